package model

import (
	"errors"
	"time"
)

// LocalExpert is a user's guide profile for a location. Rating is in tenths
// (45 means 4.5); rating, reviewCount and isVerified are server-controlled
// and cannot be set at creation.
type LocalExpert struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"userId" db:"user_id"`
	Location    string    `json:"location" db:"location"`
	Specialties []string  `json:"specialties" db:"specialties"`
	Bio         string    `json:"bio" db:"bio"`
	Rating      int       `json:"rating" db:"rating"`
	ReviewCount int       `json:"reviewCount" db:"review_count"`
	IsVerified  bool      `json:"isVerified" db:"is_verified"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type InsertLocalExpert struct {
	UserID      int      `json:"userId"`
	Location    string   `json:"location"`
	Specialties []string `json:"specialties"`
	Bio         string   `json:"bio"`
}

func (in InsertLocalExpert) Validate() error {
	if in.UserID <= 0 {
		return errors.New("userId required")
	}
	if in.Location == "" || in.Bio == "" {
		return errors.New("location and bio required")
	}
	return nil
}
