package model

import (
	"errors"
	"time"
)

type ExpenseCategory string

const (
	ExpenseAccommodation ExpenseCategory = "accommodation"
	ExpenseTransport     ExpenseCategory = "transport"
	ExpenseFood          ExpenseCategory = "food"
	ExpenseActivities    ExpenseCategory = "activities"
	ExpenseShopping      ExpenseCategory = "shopping"
	ExpenseOther         ExpenseCategory = "other"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseAccommodation, ExpenseTransport, ExpenseFood, ExpenseActivities, ExpenseShopping, ExpenseOther:
		return true
	}
	return false
}

type Expense struct {
	ID        int             `json:"id" db:"id"`
	TripID    int             `json:"tripId" db:"trip_id"`
	Title     string          `json:"title" db:"title"`
	Amount    int             `json:"amount" db:"amount"`
	Category  ExpenseCategory `json:"category" db:"category"`
	Date      time.Time       `json:"date" db:"date"`
	Notes     string          `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

type InsertExpense struct {
	TripID   int             `json:"tripId"`
	Title    string          `json:"title"`
	Amount   int             `json:"amount"`
	Category ExpenseCategory `json:"category"`
	Date     time.Time       `json:"date"`
	Notes    string          `json:"notes"`
}

func (in InsertExpense) Validate() error {
	if in.TripID <= 0 {
		return errors.New("tripId required")
	}
	if in.Title == "" {
		return errors.New("title required")
	}
	if in.Amount < 0 {
		return errors.New("amount must not be negative")
	}
	if !in.Category.Valid() {
		return errors.New("invalid category")
	}
	if in.Date.IsZero() {
		return errors.New("date required")
	}
	return nil
}

type ExpensePatch struct {
	Title    *string          `json:"title"`
	Amount   *int             `json:"amount"`
	Category *ExpenseCategory `json:"category"`
	Date     *time.Time       `json:"date"`
	Notes    *string          `json:"notes"`
}

func (p ExpensePatch) Apply(e Expense) Expense {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	return e
}
