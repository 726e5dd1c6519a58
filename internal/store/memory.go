package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"backend-oneskyquest/internal/model"
)

// collection holds one entity type's records keyed by id, plus the insertion
// order and the next id to hand out. Ids start at 1 and are never reused,
// even after a delete.
type collection[T any] struct {
	records map[int]T
	order   []int
	nextID  int
}

func newCollection[T any]() collection[T] {
	return collection[T]{records: map[int]T{}, nextID: 1}
}

// insert assigns the next id before building the record, so ids always
// match creation order.
func insert[T any](c *collection[T], build func(id int) T) T {
	id := c.nextID
	c.nextID++
	rec := build(id)
	c.records[id] = rec
	c.order = append(c.order, id)
	return rec
}

func (c *collection[T]) get(id int) (T, bool) {
	rec, ok := c.records[id]
	return rec, ok
}

func (c *collection[T]) all() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.records[id])
	}
	return out
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	out := []T{}
	for _, id := range c.order {
		if rec := c.records[id]; keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (c *collection[T]) update(id int, apply func(T) T) (T, bool) {
	rec, ok := c.records[id]
	if !ok {
		var zero T
		return zero, false
	}
	rec = apply(rec)
	c.records[id] = rec
	return rec, true
}

func (c *collection[T]) delete(id int) bool {
	if _, ok := c.records[id]; !ok {
		return false
	}
	delete(c.records, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// MemStorage is the reference Storage implementation: nine mutex-guarded
// collections, each with its own id counter. It never returns a non-nil
// error. Deleting a trip does not touch its itinerary items, expenses,
// bookings or alerts; callers decide what to do with orphans.
type MemStorage struct {
	mu sync.RWMutex

	users     collection[model.User]
	trips     collection[model.Trip]
	itinerary collection[model.ItineraryItem]
	expenses  collection[model.Expense]
	bookings  collection[model.Booking]
	alerts    collection[model.Alert]
	gems      collection[model.HiddenGem]
	posts     collection[model.CommunityPost]
	experts   collection[model.LocalExpert]
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:     newCollection[model.User](),
		trips:     newCollection[model.Trip](),
		itinerary: newCollection[model.ItineraryItem](),
		expenses:  newCollection[model.Expense](),
		bookings:  newCollection[model.Booking](),
		alerts:    newCollection[model.Alert](),
		gems:      newCollection[model.HiddenGem](),
		posts:     newCollection[model.CommunityPost](),
		experts:   newCollection[model.LocalExpert](),
	}
}

// Users

func (s *MemStorage) GetUser(_ context.Context, id int) (model.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.get(id)
	return u, ok, nil
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (model.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.users.order {
		if u := s.users.records[id]; u.Username == username {
			return u, true, nil
		}
	}
	return model.User{}, false, nil
}

func (s *MemStorage) GetUserByEmail(_ context.Context, email string) (model.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.users.order {
		if u := s.users.records[id]; u.Email == email {
			return u, true, nil
		}
	}
	return model.User{}, false, nil
}

func (s *MemStorage) CreateUser(_ context.Context, in model.InsertUser) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := insert(&s.users, func(id int) model.User {
		return model.User{
			ID:           id,
			Username:     in.Username,
			Password:     in.Password,
			Email:        in.Email,
			FullName:     in.FullName,
			Bio:          in.Bio,
			ProfileImage: in.ProfileImage,
			CreatedAt:    time.Now(),
		}
	})
	return u, nil
}

// Trips

func (s *MemStorage) GetTrips(_ context.Context) ([]model.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trips.all(), nil
}

func (s *MemStorage) GetTripsByUserID(_ context.Context, userID int) ([]model.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trips.filter(func(t model.Trip) bool { return t.UserID == userID }), nil
}

func (s *MemStorage) GetTrip(_ context.Context, id int) (model.Trip, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trips.get(id)
	return t, ok, nil
}

func (s *MemStorage) CreateTrip(_ context.Context, in model.InsertTrip) (model.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := in.Status
	if status == "" {
		status = model.TripStatusPlanned
	}
	travelers := in.Travelers
	if travelers < 1 {
		travelers = 1
	}
	t := insert(&s.trips, func(id int) model.Trip {
		return model.Trip{
			ID:          id,
			UserID:      in.UserID,
			Title:       in.Title,
			Destination: in.Destination,
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			Status:      status,
			Budget:      in.Budget,
			Travelers:   travelers,
			ImageURL:    in.ImageURL,
			CreatedAt:   time.Now(),
		}
	})
	return t, nil
}

func (s *MemStorage) UpdateTrip(_ context.Context, id int, patch model.TripPatch) (model.Trip, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trips.update(id, patch.Apply)
	return t, ok, nil
}

func (s *MemStorage) DeleteTrip(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trips.delete(id), nil
}

// Itinerary items

func (s *MemStorage) GetItineraryItemsByTripID(_ context.Context, tripID int) ([]model.ItineraryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itinerary.filter(func(i model.ItineraryItem) bool { return i.TripID == tripID }), nil
}

func (s *MemStorage) GetItineraryItem(_ context.Context, id int) (model.ItineraryItem, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.itinerary.get(id)
	return i, ok, nil
}

func (s *MemStorage) CreateItineraryItem(_ context.Context, in model.InsertItineraryItem) (model.ItineraryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := insert(&s.itinerary, func(id int) model.ItineraryItem {
		return model.ItineraryItem{
			ID:          id,
			TripID:      in.TripID,
			Title:       in.Title,
			Description: in.Description,
			ItemType:    in.ItemType,
			StartTime:   in.StartTime,
			EndTime:     in.EndTime,
			Location:    in.Location,
			Cost:        in.Cost,
			Day:         in.Day,
			IsCustom:    in.IsCustom,
		}
	})
	return item, nil
}

func (s *MemStorage) UpdateItineraryItem(_ context.Context, id int, patch model.ItineraryItemPatch) (model.ItineraryItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.itinerary.update(id, patch.Apply)
	return i, ok, nil
}

func (s *MemStorage) DeleteItineraryItem(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itinerary.delete(id), nil
}

// Expenses

func (s *MemStorage) GetExpensesByTripID(_ context.Context, tripID int) ([]model.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expenses.filter(func(e model.Expense) bool { return e.TripID == tripID }), nil
}

func (s *MemStorage) GetExpense(_ context.Context, id int) (model.Expense, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.expenses.get(id)
	return e, ok, nil
}

func (s *MemStorage) CreateExpense(_ context.Context, in model.InsertExpense) (model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := insert(&s.expenses, func(id int) model.Expense {
		return model.Expense{
			ID:        id,
			TripID:    in.TripID,
			Title:     in.Title,
			Amount:    in.Amount,
			Category:  in.Category,
			Date:      in.Date,
			Notes:     in.Notes,
			CreatedAt: time.Now(),
		}
	})
	return e, nil
}

func (s *MemStorage) UpdateExpense(_ context.Context, id int, patch model.ExpensePatch) (model.Expense, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.expenses.update(id, patch.Apply)
	return e, ok, nil
}

func (s *MemStorage) DeleteExpense(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expenses.delete(id), nil
}

// Bookings

func (s *MemStorage) GetBookingsByTripID(_ context.Context, tripID int) ([]model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookings.filter(func(b model.Booking) bool { return b.TripID == tripID }), nil
}

func (s *MemStorage) GetBooking(_ context.Context, id int) (model.Booking, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings.get(id)
	return b, ok, nil
}

func (s *MemStorage) CreateBooking(_ context.Context, in model.InsertBooking) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := insert(&s.bookings, func(id int) model.Booking {
		return model.Booking{
			ID:               id,
			TripID:           in.TripID,
			BookingType:      in.BookingType,
			Title:            in.Title,
			Provider:         in.Provider,
			ConfirmationCode: in.ConfirmationCode,
			StartDate:        in.StartDate,
			EndDate:          in.EndDate,
			Location:         in.Location,
			Cost:             in.Cost,
			Details:          in.Details,
			CreatedAt:        time.Now(),
		}
	})
	return b, nil
}

func (s *MemStorage) UpdateBooking(_ context.Context, id int, patch model.BookingPatch) (model.Booking, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings.update(id, patch.Apply)
	return b, ok, nil
}

func (s *MemStorage) DeleteBooking(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings.delete(id), nil
}

// Alerts

func (s *MemStorage) GetAlertsByUserID(_ context.Context, userID int) ([]model.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alerts.filter(func(a model.Alert) bool { return a.UserID == userID }), nil
}

func (s *MemStorage) GetAlertsByTripID(_ context.Context, tripID int) ([]model.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alerts.filter(func(a model.Alert) bool { return a.TripID != nil && *a.TripID == tripID }), nil
}

func (s *MemStorage) GetAlert(_ context.Context, id int) (model.Alert, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.alerts.get(id)
	return a, ok, nil
}

func (s *MemStorage) CreateAlert(_ context.Context, in model.InsertAlert) (model.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	urgency := in.Urgency
	if urgency == "" {
		urgency = model.UrgencyNormal
	}
	a := insert(&s.alerts, func(id int) model.Alert {
		return model.Alert{
			ID:        id,
			UserID:    in.UserID,
			TripID:    in.TripID,
			Title:     in.Title,
			Message:   in.Message,
			AlertType: in.AlertType,
			Urgency:   urgency,
			IsRead:    false,
			CreatedAt: time.Now(),
			ExpiresAt: in.ExpiresAt,
		}
	})
	return a, nil
}

func (s *MemStorage) UpdateAlert(_ context.Context, id int, patch model.AlertPatch) (model.Alert, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts.update(id, patch.Apply)
	return a, ok, nil
}

func (s *MemStorage) DeleteAlert(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alerts.delete(id), nil
}

func (s *MemStorage) MarkAlertAsRead(_ context.Context, id int) (model.Alert, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts.update(id, func(a model.Alert) model.Alert {
		a.IsRead = true
		return a
	})
	return a, ok, nil
}

// Hidden gems

func (s *MemStorage) GetHiddenGems(_ context.Context) ([]model.HiddenGem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gems.all(), nil
}

func (s *MemStorage) GetHiddenGem(_ context.Context, id int) (model.HiddenGem, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.gems.get(id)
	return g, ok, nil
}

func (s *MemStorage) GetHiddenGemsByLocation(_ context.Context, location string) ([]model.HiddenGem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(location)
	return s.gems.filter(func(g model.HiddenGem) bool {
		return strings.Contains(strings.ToLower(g.Location), needle)
	}), nil
}

func (s *MemStorage) CreateHiddenGem(_ context.Context, in model.InsertHiddenGem) (model.HiddenGem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := insert(&s.gems, func(id int) model.HiddenGem {
		return model.HiddenGem{
			ID:           id,
			Title:        in.Title,
			Description:  in.Description,
			Location:     in.Location,
			ImageURL:     in.ImageURL,
			Rating:       in.Rating,
			ReviewCount:  in.ReviewCount,
			ReviewerType: in.ReviewerType,
			Tags:         in.Tags,
			CreatedAt:    time.Now(),
		}
	})
	return g, nil
}

// Community posts

func (s *MemStorage) GetCommunityPosts(_ context.Context) ([]model.CommunityPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts.all(), nil
}

func (s *MemStorage) GetCommunityPost(_ context.Context, id int) (model.CommunityPost, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts.get(id)
	return p, ok, nil
}

func (s *MemStorage) CreateCommunityPost(_ context.Context, in model.InsertCommunityPost) (model.CommunityPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := insert(&s.posts, func(id int) model.CommunityPost {
		return model.CommunityPost{
			ID:         id,
			UserID:     in.UserID,
			Title:      in.Title,
			Content:    in.Content,
			Location:   in.Location,
			LikeCount:  0,
			ReplyCount: 0,
			CreatedAt:  time.Now(),
		}
	})
	return p, nil
}

// Local experts

func (s *MemStorage) GetLocalExperts(_ context.Context) ([]model.LocalExpert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.experts.all(), nil
}

func (s *MemStorage) GetLocalExpertsByLocation(_ context.Context, location string) ([]model.LocalExpert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(location)
	return s.experts.filter(func(e model.LocalExpert) bool {
		return strings.Contains(strings.ToLower(e.Location), needle)
	}), nil
}

func (s *MemStorage) GetLocalExpert(_ context.Context, id int) (model.LocalExpert, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.experts.get(id)
	return e, ok, nil
}

func (s *MemStorage) CreateLocalExpert(_ context.Context, in model.InsertLocalExpert) (model.LocalExpert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := insert(&s.experts, func(id int) model.LocalExpert {
		return model.LocalExpert{
			ID:          id,
			UserID:      in.UserID,
			Location:    in.Location,
			Specialties: in.Specialties,
			Bio:         in.Bio,
			Rating:      0,
			ReviewCount: 0,
			IsVerified:  false,
			CreatedAt:   time.Now(),
		}
	})
	return e, nil
}
