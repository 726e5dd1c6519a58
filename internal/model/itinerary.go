package model

import (
	"errors"
	"time"
)

type ItineraryItemType string

const (
	ItineraryItemActivity      ItineraryItemType = "activity"
	ItineraryItemTransport     ItineraryItemType = "transport"
	ItineraryItemAccommodation ItineraryItemType = "accommodation"
	ItineraryItemFood          ItineraryItemType = "food"
)

func (t ItineraryItemType) Valid() bool {
	switch t {
	case ItineraryItemActivity, ItineraryItemTransport, ItineraryItemAccommodation, ItineraryItemFood:
		return true
	}
	return false
}

type ItineraryItem struct {
	ID          int               `json:"id" db:"id"`
	TripID      int               `json:"tripId" db:"trip_id"`
	Title       string            `json:"title" db:"title"`
	Description string            `json:"description,omitempty" db:"description"`
	ItemType    ItineraryItemType `json:"itemType" db:"item_type"`
	StartTime   time.Time         `json:"startTime" db:"start_time"`
	EndTime     *time.Time        `json:"endTime,omitempty" db:"end_time"`
	Location    string            `json:"location,omitempty" db:"location"`
	Cost        int               `json:"cost" db:"cost"`
	Day         int               `json:"day" db:"day"`
	IsCustom    bool              `json:"isCustom" db:"is_custom"`
}

type InsertItineraryItem struct {
	TripID      int               `json:"tripId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ItemType    ItineraryItemType `json:"itemType"`
	StartTime   time.Time         `json:"startTime"`
	EndTime     *time.Time        `json:"endTime"`
	Location    string            `json:"location"`
	Cost        int               `json:"cost"`
	Day         int               `json:"day"`
	IsCustom    bool              `json:"isCustom"`
}

func (in InsertItineraryItem) Validate() error {
	if in.TripID <= 0 {
		return errors.New("tripId required")
	}
	if in.Title == "" {
		return errors.New("title required")
	}
	if !in.ItemType.Valid() {
		return errors.New("invalid itemType")
	}
	if in.StartTime.IsZero() {
		return errors.New("startTime required")
	}
	if in.Day < 1 {
		return errors.New("day must be 1 or greater")
	}
	return nil
}

type ItineraryItemPatch struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	ItemType    *ItineraryItemType `json:"itemType"`
	StartTime   *time.Time         `json:"startTime"`
	EndTime     *time.Time         `json:"endTime"`
	Location    *string            `json:"location"`
	Cost        *int               `json:"cost"`
	Day         *int               `json:"day"`
	IsCustom    *bool              `json:"isCustom"`
}

func (p ItineraryItemPatch) Apply(item ItineraryItem) ItineraryItem {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.ItemType != nil {
		item.ItemType = *p.ItemType
	}
	if p.StartTime != nil {
		item.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		item.EndTime = p.EndTime
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Cost != nil {
		item.Cost = *p.Cost
	}
	if p.Day != nil {
		item.Day = *p.Day
	}
	if p.IsCustom != nil {
		item.IsCustom = *p.IsCustom
	}
	return item
}
