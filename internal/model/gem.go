package model

import (
	"errors"
	"time"
)

// HiddenGem is a standalone discoverable spot, not tied to any trip or user.
// Rating is stored in tenths: 48 means 4.8 stars.
type HiddenGem struct {
	ID           int       `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Location     string    `json:"location" db:"location"`
	ImageURL     string    `json:"imageUrl,omitempty" db:"image_url"`
	Rating       int       `json:"rating,omitempty" db:"rating"`
	ReviewCount  int       `json:"reviewCount,omitempty" db:"review_count"`
	ReviewerType string    `json:"reviewerType,omitempty" db:"reviewer_type"`
	Tags         []string  `json:"tags,omitempty" db:"tags"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type InsertHiddenGem struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	ImageURL     string   `json:"imageUrl"`
	Rating       int      `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	ReviewerType string   `json:"reviewerType"`
	Tags         []string `json:"tags"`
}

func (in InsertHiddenGem) Validate() error {
	if in.Title == "" || in.Description == "" || in.Location == "" {
		return errors.New("title, description and location required")
	}
	if in.Rating < 0 || in.Rating > 50 {
		return errors.New("rating must be between 0 and 50")
	}
	if in.ReviewCount < 0 {
		return errors.New("reviewCount must not be negative")
	}
	return nil
}
