// Package store is the single source of truth for all domain state. The
// Storage interface is implemented twice: MemStorage, the reference in-memory
// store used by default and in tests, and PostgresStorage for deployments
// with a real database behind it.
//
// Lookups report a missing record as a false second return, never as an
// error; the error slot is reserved for backend failures. Collection reads
// return records in insertion order and an empty slice rather than an error
// when nothing matches.
package store

import (
	"context"

	"backend-oneskyquest/internal/model"
)

type Storage interface {
	// Users. Users cannot be updated or deleted through the API.
	GetUser(ctx context.Context, id int) (model.User, bool, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, bool, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, bool, error)
	CreateUser(ctx context.Context, in model.InsertUser) (model.User, error)

	// Trips.
	GetTrips(ctx context.Context) ([]model.Trip, error)
	GetTripsByUserID(ctx context.Context, userID int) ([]model.Trip, error)
	GetTrip(ctx context.Context, id int) (model.Trip, bool, error)
	CreateTrip(ctx context.Context, in model.InsertTrip) (model.Trip, error)
	UpdateTrip(ctx context.Context, id int, patch model.TripPatch) (model.Trip, bool, error)
	DeleteTrip(ctx context.Context, id int) (bool, error)

	// Itinerary items.
	GetItineraryItemsByTripID(ctx context.Context, tripID int) ([]model.ItineraryItem, error)
	GetItineraryItem(ctx context.Context, id int) (model.ItineraryItem, bool, error)
	CreateItineraryItem(ctx context.Context, in model.InsertItineraryItem) (model.ItineraryItem, error)
	UpdateItineraryItem(ctx context.Context, id int, patch model.ItineraryItemPatch) (model.ItineraryItem, bool, error)
	DeleteItineraryItem(ctx context.Context, id int) (bool, error)

	// Expenses.
	GetExpensesByTripID(ctx context.Context, tripID int) ([]model.Expense, error)
	GetExpense(ctx context.Context, id int) (model.Expense, bool, error)
	CreateExpense(ctx context.Context, in model.InsertExpense) (model.Expense, error)
	UpdateExpense(ctx context.Context, id int, patch model.ExpensePatch) (model.Expense, bool, error)
	DeleteExpense(ctx context.Context, id int) (bool, error)

	// Bookings.
	GetBookingsByTripID(ctx context.Context, tripID int) ([]model.Booking, error)
	GetBooking(ctx context.Context, id int) (model.Booking, bool, error)
	CreateBooking(ctx context.Context, in model.InsertBooking) (model.Booking, error)
	UpdateBooking(ctx context.Context, id int, patch model.BookingPatch) (model.Booking, bool, error)
	DeleteBooking(ctx context.Context, id int) (bool, error)

	// Alerts.
	GetAlertsByUserID(ctx context.Context, userID int) ([]model.Alert, error)
	GetAlertsByTripID(ctx context.Context, tripID int) ([]model.Alert, error)
	GetAlert(ctx context.Context, id int) (model.Alert, bool, error)
	CreateAlert(ctx context.Context, in model.InsertAlert) (model.Alert, error)
	UpdateAlert(ctx context.Context, id int, patch model.AlertPatch) (model.Alert, bool, error)
	DeleteAlert(ctx context.Context, id int) (bool, error)
	MarkAlertAsRead(ctx context.Context, id int) (model.Alert, bool, error)

	// Hidden gems.
	GetHiddenGems(ctx context.Context) ([]model.HiddenGem, error)
	GetHiddenGem(ctx context.Context, id int) (model.HiddenGem, bool, error)
	GetHiddenGemsByLocation(ctx context.Context, location string) ([]model.HiddenGem, error)
	CreateHiddenGem(ctx context.Context, in model.InsertHiddenGem) (model.HiddenGem, error)

	// Community posts.
	GetCommunityPosts(ctx context.Context) ([]model.CommunityPost, error)
	GetCommunityPost(ctx context.Context, id int) (model.CommunityPost, bool, error)
	CreateCommunityPost(ctx context.Context, in model.InsertCommunityPost) (model.CommunityPost, error)

	// Local experts.
	GetLocalExperts(ctx context.Context) ([]model.LocalExpert, error)
	GetLocalExpertsByLocation(ctx context.Context, location string) ([]model.LocalExpert, error)
	GetLocalExpert(ctx context.Context, id int) (model.LocalExpert, bool, error)
	CreateLocalExpert(ctx context.Context, in model.InsertLocalExpert) (model.LocalExpert, error)
}

var (
	_ Storage = (*MemStorage)(nil)
	_ Storage = (*PostgresStorage)(nil)
)
