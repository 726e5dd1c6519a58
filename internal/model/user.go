package model

import (
	"errors"
	"time"
)

type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Password     string    `json:"password" db:"password"`
	Email        string    `json:"email" db:"email"`
	FullName     string    `json:"fullName" db:"full_name"`
	Bio          string    `json:"bio,omitempty" db:"bio"`
	ProfileImage string    `json:"profileImage,omitempty" db:"profile_image"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// InsertUser is the creatable subset of User; id and createdAt are
// assigned by the store.
type InsertUser struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
}

func (in InsertUser) Validate() error {
	if in.Username == "" || in.Password == "" || in.Email == "" || in.FullName == "" {
		return errors.New("username, password, email and fullName required")
	}
	return nil
}
