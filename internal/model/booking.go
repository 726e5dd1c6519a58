package model

import (
	"errors"
	"time"
)

// Booking covers any reserved service attached to a trip: flights, hotels,
// cruises and so on. Details is an opaque per-provider document with no
// assumed internal shape.
type Booking struct {
	ID               int            `json:"id" db:"id"`
	TripID           int            `json:"tripId" db:"trip_id"`
	BookingType      string         `json:"bookingType" db:"booking_type"`
	Title            string         `json:"title" db:"title"`
	Provider         string         `json:"provider,omitempty" db:"provider"`
	ConfirmationCode string         `json:"confirmationCode,omitempty" db:"confirmation_code"`
	StartDate        time.Time      `json:"startDate" db:"start_date"`
	EndDate          time.Time      `json:"endDate" db:"end_date"`
	Location         string         `json:"location,omitempty" db:"location"`
	Cost             int            `json:"cost" db:"cost"`
	Details          map[string]any `json:"details,omitempty" db:"details"`
	CreatedAt        time.Time      `json:"createdAt" db:"created_at"`
}

type InsertBooking struct {
	TripID           int            `json:"tripId"`
	BookingType      string         `json:"bookingType"`
	Title            string         `json:"title"`
	Provider         string         `json:"provider"`
	ConfirmationCode string         `json:"confirmationCode"`
	StartDate        time.Time      `json:"startDate"`
	EndDate          time.Time      `json:"endDate"`
	Location         string         `json:"location"`
	Cost             int            `json:"cost"`
	Details          map[string]any `json:"details"`
}

func (in InsertBooking) Validate() error {
	if in.TripID <= 0 {
		return errors.New("tripId required")
	}
	if in.BookingType == "" || in.Title == "" {
		return errors.New("bookingType and title required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return errors.New("startDate and endDate required")
	}
	if in.Cost < 0 {
		return errors.New("cost must not be negative")
	}
	return nil
}

type BookingPatch struct {
	BookingType      *string        `json:"bookingType"`
	Title            *string        `json:"title"`
	Provider         *string        `json:"provider"`
	ConfirmationCode *string        `json:"confirmationCode"`
	StartDate        *time.Time     `json:"startDate"`
	EndDate          *time.Time     `json:"endDate"`
	Location         *string        `json:"location"`
	Cost             *int           `json:"cost"`
	Details          map[string]any `json:"details"`
}

func (p BookingPatch) Apply(b Booking) Booking {
	if p.BookingType != nil {
		b.BookingType = *p.BookingType
	}
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Provider != nil {
		b.Provider = *p.Provider
	}
	if p.ConfirmationCode != nil {
		b.ConfirmationCode = *p.ConfirmationCode
	}
	if p.StartDate != nil {
		b.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		b.EndDate = *p.EndDate
	}
	if p.Location != nil {
		b.Location = *p.Location
	}
	if p.Cost != nil {
		b.Cost = *p.Cost
	}
	if p.Details != nil {
		b.Details = p.Details
	}
	return b
}
