package model

import (
	"errors"
	"time"
)

type TripStatus string

const (
	TripStatusPlanned   TripStatus = "planned"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusPlanned, TripStatusOngoing, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

type Trip struct {
	ID          int        `json:"id" db:"id"`
	UserID      int        `json:"userId" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Destination string     `json:"destination" db:"destination"`
	StartDate   time.Time  `json:"startDate" db:"start_date"`
	EndDate     time.Time  `json:"endDate" db:"end_date"`
	Status      TripStatus `json:"status" db:"status"`
	Budget      int        `json:"budget" db:"budget"`
	Travelers   int        `json:"travelers" db:"travelers"`
	ImageURL    string     `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

type InsertTrip struct {
	UserID      int        `json:"userId"`
	Title       string     `json:"title"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Status      TripStatus `json:"status"`
	Budget      int        `json:"budget"`
	Travelers   int        `json:"travelers"`
	ImageURL    string     `json:"imageUrl"`
}

func (in InsertTrip) Validate() error {
	if in.UserID <= 0 {
		return errors.New("userId required")
	}
	if in.Title == "" || in.Destination == "" {
		return errors.New("title and destination required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return errors.New("startDate and endDate required")
	}
	if in.Status != "" && !in.Status.Valid() {
		return errors.New("invalid trip status")
	}
	// zero means "not provided" and is defaulted to 1 by the store
	if in.Travelers < 0 {
		return errors.New("travelers must not be negative")
	}
	return nil
}

// TripPatch carries a shallow partial update; nil fields are left unchanged.
type TripPatch struct {
	Title       *string     `json:"title"`
	Destination *string     `json:"destination"`
	StartDate   *time.Time  `json:"startDate"`
	EndDate     *time.Time  `json:"endDate"`
	Status      *TripStatus `json:"status"`
	Budget      *int        `json:"budget"`
	Travelers   *int        `json:"travelers"`
	ImageURL    *string     `json:"imageUrl"`
}

func (p TripPatch) Apply(t Trip) Trip {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Budget != nil {
		t.Budget = *p.Budget
	}
	if p.Travelers != nil {
		t.Travelers = *p.Travelers
	}
	if p.ImageURL != nil {
		t.ImageURL = *p.ImageURL
	}
	return t
}
