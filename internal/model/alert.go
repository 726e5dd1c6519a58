package model

import (
	"errors"
	"time"
)

type AlertType string

const (
	AlertFlight    AlertType = "flight"
	AlertWeather   AlertType = "weather"
	AlertDeal      AlertType = "deal"
	AlertTransport AlertType = "transport"
	AlertSafety    AlertType = "safety"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertFlight, AlertWeather, AlertDeal, AlertTransport, AlertSafety:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyUrgent Urgency = "urgent"
	UrgencyNormal Urgency = "normal"
	UrgencyInfo   Urgency = "info"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyUrgent, UrgencyNormal, UrgencyInfo:
		return true
	}
	return false
}

type Alert struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"userId" db:"user_id"`
	TripID    *int       `json:"tripId,omitempty" db:"trip_id"`
	Title     string     `json:"title" db:"title"`
	Message   string     `json:"message" db:"message"`
	AlertType AlertType  `json:"alertType" db:"alert_type"`
	Urgency   Urgency    `json:"urgency" db:"urgency"`
	IsRead    bool       `json:"isRead" db:"is_read"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty" db:"expires_at"`
}

// InsertAlert deliberately has no isRead field: alerts always start unread
// and only ever move to read.
type InsertAlert struct {
	UserID    int        `json:"userId"`
	TripID    *int       `json:"tripId"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	AlertType AlertType  `json:"alertType"`
	Urgency   Urgency    `json:"urgency"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

func (in InsertAlert) Validate() error {
	if in.UserID <= 0 {
		return errors.New("userId required")
	}
	if in.Title == "" || in.Message == "" {
		return errors.New("title and message required")
	}
	if !in.AlertType.Valid() {
		return errors.New("invalid alertType")
	}
	if in.Urgency != "" && !in.Urgency.Valid() {
		return errors.New("invalid urgency")
	}
	return nil
}

// AlertPatch excludes isRead; the read flag is flipped only through
// MarkAlertAsRead so it can never revert to unread.
type AlertPatch struct {
	Title     *string    `json:"title"`
	Message   *string    `json:"message"`
	AlertType *AlertType `json:"alertType"`
	Urgency   *Urgency   `json:"urgency"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

func (p AlertPatch) Apply(a Alert) Alert {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Message != nil {
		a.Message = *p.Message
	}
	if p.AlertType != nil {
		a.AlertType = *p.AlertType
	}
	if p.Urgency != nil {
		a.Urgency = *p.Urgency
	}
	if p.ExpiresAt != nil {
		a.ExpiresAt = p.ExpiresAt
	}
	return a
}
