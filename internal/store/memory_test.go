package store

import (
	"context"
	"testing"
	"time"

	"backend-oneskyquest/internal/model"
)

func newTestUser(name string) model.InsertUser {
	return model.InsertUser{
		Username: name,
		Password: "secret",
		Email:    name + "@example.com",
		FullName: "Test " + name,
	}
}

func newTestTrip(userID int) model.InsertTrip {
	return model.InsertTrip{
		UserID:      userID,
		Title:       "Paris Getaway",
		Destination: "Paris, France",
		StartDate:   time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, time.June, 22, 0, 0, 0, 0, time.UTC),
		Budget:      2500,
		Travelers:   2,
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	for i, name := range []string{"alice", "bob", "carol"} {
		u, err := s.CreateUser(ctx, newTestUser(name))
		if err != nil {
			t.Fatalf("create user: %v", err)
		}
		if u.ID != i+1 {
			t.Fatalf("expected id %d, got %d", i+1, u.ID)
		}
		if u.CreatedAt.IsZero() {
			t.Fatalf("expected createdAt to be set")
		}
	}

	// counters are independent per entity type
	trip, err := s.CreateTrip(ctx, newTestTrip(1))
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	if trip.ID != 1 {
		t.Fatalf("expected trip id 1, got %d", trip.ID)
	}
}

func TestGetAllPreservesInsertionOrder(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		_, err := s.CreateHiddenGem(ctx, model.InsertHiddenGem{
			Title:       title,
			Description: "desc",
			Location:    "Paris",
		})
		if err != nil {
			t.Fatalf("create gem: %v", err)
		}
	}

	gems, err := s.GetHiddenGems(ctx)
	if err != nil {
		t.Fatalf("get gems: %v", err)
	}
	if len(gems) != len(titles) {
		t.Fatalf("expected %d gems, got %d", len(titles), len(gems))
	}
	for i, g := range gems {
		if g.Title != titles[i] {
			t.Fatalf("expected %q at position %d, got %q", titles[i], i, g.Title)
		}
	}
}

func TestGetByParentPreservesInsertionOrder(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, newTestUser("alice")); err != nil {
		t.Fatalf("create user: %v", err)
	}
	trip, err := s.CreateTrip(ctx, newTestTrip(1))
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}

	for i, title := range []string{"Hotel", "Dinner", "Museum"} {
		_, err := s.CreateExpense(ctx, model.InsertExpense{
			TripID:   trip.ID,
			Title:    title,
			Amount:   100 * (i + 1),
			Category: model.ExpenseOther,
			Date:     time.Now(),
		})
		if err != nil {
			t.Fatalf("create expense: %v", err)
		}
	}

	expenses, err := s.GetExpensesByTripID(ctx, trip.ID)
	if err != nil {
		t.Fatalf("get expenses: %v", err)
	}
	if len(expenses) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(expenses))
	}
	for i, e := range expenses {
		if e.ID != i+1 {
			t.Fatalf("expected id %d at position %d, got %d", i+1, i, e.ID)
		}
	}
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	title := "New Title"
	_, ok, err := s.UpdateTrip(ctx, 42, model.TripPatch{Title: &title})
	if err != nil {
		t.Fatalf("update trip: %v", err)
	}
	if ok {
		t.Fatalf("expected not found for missing trip")
	}

	trips, err := s.GetTrips(ctx)
	if err != nil {
		t.Fatalf("get trips: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("expected collection unchanged")
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	trip, err := s.CreateTrip(ctx, newTestTrip(1))
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}

	budget := 3000
	updated, ok, err := s.UpdateTrip(ctx, trip.ID, model.TripPatch{Budget: &budget})
	if err != nil || !ok {
		t.Fatalf("update trip: %v", err)
	}
	if updated.Budget != 3000 {
		t.Fatalf("expected budget updated")
	}
	if updated.Title != trip.Title || updated.Destination != trip.Destination {
		t.Fatalf("expected untouched fields preserved")
	}
}

func TestDeleteIsIdempotentlyFalse(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	trip, err := s.CreateTrip(ctx, newTestTrip(1))
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}

	deleted, err := s.DeleteTrip(ctx, trip.ID)
	if err != nil || !deleted {
		t.Fatalf("expected first delete to succeed")
	}
	deleted, err = s.DeleteTrip(ctx, trip.ID)
	if err != nil {
		t.Fatalf("delete trip: %v", err)
	}
	if deleted {
		t.Fatalf("expected second delete to report missing")
	}
}

func TestDeletedIDsAreNeverReused(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	first, _ := s.CreateTrip(ctx, newTestTrip(1))
	if _, err := s.DeleteTrip(ctx, first.ID); err != nil {
		t.Fatalf("delete trip: %v", err)
	}
	second, _ := s.CreateTrip(ctx, newTestTrip(1))
	if second.ID != first.ID+1 {
		t.Fatalf("expected id %d after delete, got %d", first.ID+1, second.ID)
	}
}

func TestAlertStartsUnreadAndMarkReadIsIdempotent(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	alert, err := s.CreateAlert(ctx, model.InsertAlert{
		UserID:    1,
		Title:     "Flight Delayed",
		Message:   "2 hours late",
		AlertType: model.AlertFlight,
	})
	if err != nil {
		t.Fatalf("create alert: %v", err)
	}
	if alert.IsRead {
		t.Fatalf("expected new alert unread")
	}
	if alert.Urgency != model.UrgencyNormal {
		t.Fatalf("expected urgency defaulted to normal")
	}

	for i := 0; i < 2; i++ {
		read, ok, err := s.MarkAlertAsRead(ctx, alert.ID)
		if err != nil || !ok {
			t.Fatalf("mark read: %v", err)
		}
		if !read.IsRead {
			t.Fatalf("expected alert read after mark")
		}
	}
}

func TestAlertsByTripIDSkipsUnscopedAlerts(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	tripID := 7
	if _, err := s.CreateAlert(ctx, model.InsertAlert{UserID: 1, Title: "a", Message: "m", AlertType: model.AlertDeal}); err != nil {
		t.Fatalf("create alert: %v", err)
	}
	if _, err := s.CreateAlert(ctx, model.InsertAlert{UserID: 1, TripID: &tripID, Title: "b", Message: "m", AlertType: model.AlertDeal}); err != nil {
		t.Fatalf("create alert: %v", err)
	}

	alerts, err := s.GetAlertsByTripID(ctx, tripID)
	if err != nil {
		t.Fatalf("get alerts: %v", err)
	}
	if len(alerts) != 1 || alerts[0].Title != "b" {
		t.Fatalf("expected only the trip-scoped alert")
	}

	none, err := s.GetAlertsByTripID(ctx, 999)
	if err != nil {
		t.Fatalf("get alerts: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, not an error")
	}
}

func TestCommunityPostCountersStartAtZero(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	post, err := s.CreateCommunityPost(ctx, model.InsertCommunityPost{
		UserID:  1,
		Title:   "Best time to visit Montmartre?",
		Content: "Looking for quiet hours.",
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.LikeCount != 0 || post.ReplyCount != 0 {
		t.Fatalf("expected counters initialized to zero")
	}
}

func TestLocalExpertServerControlledDefaults(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	expert, err := s.CreateLocalExpert(ctx, model.InsertLocalExpert{
		UserID:      1,
		Location:    "Paris, France",
		Specialties: []string{"Food"},
		Bio:         "Guide",
	})
	if err != nil {
		t.Fatalf("create expert: %v", err)
	}
	if expert.Rating != 0 || expert.ReviewCount != 0 || expert.IsVerified {
		t.Fatalf("expected rating, reviewCount and isVerified defaults")
	}
}

func TestTripDefaults(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	in := newTestTrip(1)
	in.Status = ""
	in.Travelers = 0
	trip, err := s.CreateTrip(ctx, in)
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	if trip.Status != model.TripStatusPlanned {
		t.Fatalf("expected status defaulted to planned")
	}
	if trip.Travelers != 1 {
		t.Fatalf("expected travelers defaulted to 1")
	}
}

func TestDeleteTripOrphansChildren(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, newTestUser("alice")); err != nil {
		t.Fatalf("create user: %v", err)
	}
	trip, err := s.CreateTrip(ctx, newTestTrip(1))
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}

	if _, err := s.CreateItineraryItem(ctx, model.InsertItineraryItem{
		TripID:    trip.ID,
		Title:     "Louvre",
		ItemType:  model.ItineraryItemActivity,
		StartTime: time.Now(),
		Day:       1,
	}); err != nil {
		t.Fatalf("create itinerary item: %v", err)
	}
	if _, err := s.CreateExpense(ctx, model.InsertExpense{
		TripID:   trip.ID,
		Title:    "Tickets",
		Amount:   40,
		Category: model.ExpenseActivities,
		Date:     time.Now(),
	}); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if _, err := s.CreateBooking(ctx, model.InsertBooking{
		TripID:      trip.ID,
		BookingType: "hotel",
		Title:       "Hotel",
		StartDate:   time.Now(),
		EndDate:     time.Now(),
		Cost:        500,
	}); err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if _, err := s.CreateAlert(ctx, model.InsertAlert{
		UserID:    1,
		TripID:    &trip.ID,
		Title:     "Weather",
		Message:   "Rain",
		AlertType: model.AlertWeather,
	}); err != nil {
		t.Fatalf("create alert: %v", err)
	}

	if deleted, err := s.DeleteTrip(ctx, trip.ID); err != nil || !deleted {
		t.Fatalf("delete trip: %v", err)
	}

	items, _ := s.GetItineraryItemsByTripID(ctx, trip.ID)
	expenses, _ := s.GetExpensesByTripID(ctx, trip.ID)
	bookings, _ := s.GetBookingsByTripID(ctx, trip.ID)
	alerts, _ := s.GetAlertsByTripID(ctx, trip.ID)
	if len(items) != 1 || len(expenses) != 1 || len(bookings) != 1 || len(alerts) != 1 {
		t.Fatalf("expected child records to survive trip deletion")
	}
}

func TestUserLookupHelpers(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, newTestUser("alice"))
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	byName, ok, err := s.GetUserByUsername(ctx, "alice")
	if err != nil || !ok || byName.ID != created.ID {
		t.Fatalf("expected lookup by username")
	}
	byEmail, ok, err := s.GetUserByEmail(ctx, "alice@example.com")
	if err != nil || !ok || byEmail.ID != created.ID {
		t.Fatalf("expected lookup by email")
	}
	if _, ok, _ := s.GetUserByUsername(ctx, "nobody"); ok {
		t.Fatalf("expected missing username to report not found")
	}
}

func TestHiddenGemsByLocationSubstring(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	locations := []string{"Latin Quarter, Paris", "Shibuya, Tokyo", "12th Arrondissement, Paris"}
	for _, loc := range locations {
		if _, err := s.CreateHiddenGem(ctx, model.InsertHiddenGem{Title: loc, Description: "d", Location: loc}); err != nil {
			t.Fatalf("create gem: %v", err)
		}
	}

	gems, err := s.GetHiddenGemsByLocation(ctx, "PARIS")
	if err != nil {
		t.Fatalf("get gems: %v", err)
	}
	if len(gems) != 2 {
		t.Fatalf("expected case-insensitive substring match, got %d", len(gems))
	}
}

func TestGetMissingIsNotAnError(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	if _, ok, err := s.GetTrip(ctx, 999); err != nil || ok {
		t.Fatalf("expected absent trip without error")
	}
	if _, ok, err := s.GetAlert(ctx, -1); err != nil || ok {
		t.Fatalf("expected out-of-range id treated as absent")
	}
}
