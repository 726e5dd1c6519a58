package store

import (
	"context"
	"fmt"
	"time"

	"backend-oneskyquest/internal/model"
)

// Seed populates a fresh store with a cross-referencing sample snapshot so
// the API is exercisable without an onboarding flow. Creation order follows
// the foreign keys: users before their trips, experts and posts; the trip
// before its itinerary, expenses, alerts and bookings.
func Seed(ctx context.Context, s Storage) error {
	now := time.Now()

	gems := []model.InsertHiddenGem{
		{
			Title:        "Le Comptoir du Relais",
			Description:  "This tiny bistro serves some of the city's best authentic French cuisine, but is often overlooked by tourists for more famous establishments.",
			Location:     "Saint-Germain-des-Prés, Paris",
			ImageURL:     "https://images.unsplash.com/photo-1517309230475-6736d926b979",
			Rating:       48,
			ReviewCount:  124,
			ReviewerType: "locals",
			Tags:         []string{"food", "bistro", "authentic"},
		},
		{
			Title:        "Promenade Plantée",
			Description:  "This elevated park built on an old railway line offers a peaceful escape from the city with beautiful gardens and unique views.",
			Location:     "12th Arrondissement, Paris",
			ImageURL:     "https://images.unsplash.com/photo-1558522195-e1201b090344",
			Rating:       49,
			ReviewCount:  86,
			ReviewerType: "locals",
			Tags:         []string{"nature", "park", "walking"},
		},
		{
			Title:        "Shakespeare and Company",
			Description:  "This historic English-language bookstore has been a haven for writers and literary fans since 1951, with a charming atmosphere.",
			Location:     "Latin Quarter, Paris",
			ImageURL:     "https://images.unsplash.com/photo-1544699873-808e9734b375",
			Rating:       47,
			ReviewCount:  156,
			ReviewerType: "locals",
			Tags:         []string{"books", "culture", "historic"},
		},
	}
	for _, g := range gems {
		if _, err := s.CreateHiddenGem(ctx, g); err != nil {
			return fmt.Errorf("seed hidden gem: %w", err)
		}
	}

	experts := []struct {
		user   model.InsertUser
		expert model.InsertLocalExpert
	}{
		{
			user: model.InsertUser{
				Username:     "jeanpierre",
				Password:     "securepassword1",
				Email:        "jeanpierre@example.com",
				FullName:     "Jean-Pierre Dubois",
				Bio:          "Parisian food enthusiast and cultural guide",
				ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
			},
			expert: model.InsertLocalExpert{
				Location:    "Paris, France",
				Specialties: []string{"Food", "Culture"},
				Bio:         "Born and raised in Paris, I love sharing the hidden culinary treasures of my city.",
			},
		},
		{
			user: model.InsertUser{
				Username:     "clairedupont",
				Password:     "securepassword2",
				Email:        "claire@example.com",
				FullName:     "Claire Dupont",
				Bio:          "Art historian and museum guide",
				ProfileImage: "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
			},
			expert: model.InsertLocalExpert{
				Location:    "Paris, France",
				Specialties: []string{"History", "Art"},
				Bio:         "Art historian specializing in Parisian museums and galleries.",
			},
		},
		{
			user: model.InsertUser{
				Username:     "michelr",
				Password:     "securepassword3",
				Email:        "michel@example.com",
				FullName:     "Michel Renard",
				Bio:          "Music producer and nightlife enthusiast",
				ProfileImage: "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6",
			},
			expert: model.InsertLocalExpert{
				Location:    "Paris, France",
				Specialties: []string{"Nightlife", "Music"},
				Bio:         "I know all the best spots for live music and nightlife in Paris.",
			},
		},
	}
	for _, e := range experts {
		user, err := s.CreateUser(ctx, e.user)
		if err != nil {
			return fmt.Errorf("seed expert user: %w", err)
		}
		e.expert.UserID = user.ID
		if _, err := s.CreateLocalExpert(ctx, e.expert); err != nil {
			return fmt.Errorf("seed local expert: %w", err)
		}
	}

	posters := []struct {
		user model.InsertUser
		post model.InsertCommunityPost
	}{
		{
			user: model.InsertUser{
				Username:     "sophiel",
				Password:     "securepassword4",
				Email:        "sophie@example.com",
				FullName:     "Sophie Laurent",
				Bio:          "Paris local, travel enthusiast",
				ProfileImage: "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
			},
			post: model.InsertCommunityPost{
				Title:    "Best time to visit Montmartre with fewer tourists?",
				Content:  "I'm planning my trip to Paris and would love to explore Montmartre without the crowds. Any suggestions on days/times that might be less busy?",
				Location: "Montmartre, Paris",
			},
		},
		{
			user: model.InsertUser{
				Username:     "markt",
				Password:     "securepassword5",
				Email:        "mark@example.com",
				FullName:     "Mark Thompson",
				Bio:          "Travel blogger, 28 countries visited",
				ProfileImage: "https://images.unsplash.com/photo-1531427186611-ecfd6d936c79",
			},
			post: model.InsertCommunityPost{
				Title:    "Hidden food gems near the Eiffel Tower?",
				Content:  "Looking for authentic, non-touristy restaurants within walking distance of the Eiffel Tower. Any recommendations from locals or experienced travelers?",
				Location: "Eiffel Tower, Paris",
			},
		},
	}
	for _, p := range posters {
		user, err := s.CreateUser(ctx, p.user)
		if err != nil {
			return fmt.Errorf("seed poster user: %w", err)
		}
		p.post.UserID = user.ID
		if _, err := s.CreateCommunityPost(ctx, p.post); err != nil {
			return fmt.Errorf("seed community post: %w", err)
		}
	}

	demo, err := s.CreateUser(ctx, model.InsertUser{
		Username:     "demo",
		Password:     "password",
		Email:        "demo@example.com",
		FullName:     "Demo User",
		Bio:          "Travel enthusiast exploring the world",
		ProfileImage: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde",
	})
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	trip, err := s.CreateTrip(ctx, model.InsertTrip{
		UserID:      demo.ID,
		Title:       "Paris Getaway",
		Destination: "Paris, France",
		StartDate:   time.Date(now.Year(), time.June, 15, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(now.Year(), time.June, 22, 0, 0, 0, 0, time.UTC),
		Status:      model.TripStatusPlanned,
		Budget:      2500,
		Travelers:   2,
		ImageURL:    "https://images.unsplash.com/photo-1502602898657-3e91760cbb34",
	})
	if err != nil {
		return fmt.Errorf("seed trip: %w", err)
	}

	day1Morning := time.Date(now.Year(), time.June, 15, 9, 0, 0, 0, time.UTC)
	day1MorningEnd := day1Morning.Add(2 * time.Hour)
	day1Noon := time.Date(now.Year(), time.June, 15, 12, 0, 0, 0, time.UTC)
	day1NoonEnd := day1Noon.Add(2 * time.Hour)

	items := []model.InsertItineraryItem{
		{
			TripID:      trip.ID,
			Title:       "Meiji Shrine",
			Description: "Start your day with tranquility at this iconic Shinto shrine surrounded by a forest.",
			ItemType:    model.ItineraryItemActivity,
			StartTime:   day1Morning,
			EndTime:     &day1MorningEnd,
			Location:    "Meiji Shrine, Tokyo",
			Cost:        0,
			Day:         1,
		},
		{
			TripID:      trip.ID,
			Title:       "Harajuku & Lunch",
			Description: "Explore the vibrant Takeshita Street and enjoy lunch at a local café.",
			ItemType:    model.ItineraryItemFood,
			StartTime:   day1Noon,
			EndTime:     &day1NoonEnd,
			Location:    "Harajuku, Tokyo",
			Cost:        2500,
			Day:         1,
		},
	}
	for _, item := range items {
		if _, err := s.CreateItineraryItem(ctx, item); err != nil {
			return fmt.Errorf("seed itinerary item: %w", err)
		}
	}

	expenses := []model.InsertExpense{
		{TripID: trip.ID, Title: "Hotel Booking", Amount: 680, Category: model.ExpenseAccommodation, Date: time.Date(now.Year(), time.June, 10, 0, 0, 0, 0, time.UTC), Notes: "Hotel reservation for Paris trip"},
		{TripID: trip.ID, Title: "Restaurants", Amount: 320, Category: model.ExpenseFood, Date: time.Date(now.Year(), time.June, 11, 0, 0, 0, 0, time.UTC), Notes: "Estimated food costs"},
		{TripID: trip.ID, Title: "Museum tickets", Amount: 210, Category: model.ExpenseActivities, Date: time.Date(now.Year(), time.June, 12, 0, 0, 0, 0, time.UTC), Notes: "Louvre, Orsay, and other museum entries"},
	}
	for _, e := range expenses {
		if _, err := s.CreateExpense(ctx, e); err != nil {
			return fmt.Errorf("seed expense: %w", err)
		}
	}

	in24h := now.Add(24 * time.Hour)
	in48h := now.Add(48 * time.Hour)
	in72h := now.Add(72 * time.Hour)
	alerts := []model.InsertAlert{
		{
			UserID:    demo.ID,
			TripID:    &trip.ID,
			Title:     "Flight AA267 Delayed",
			Message:   "Your New York to Paris flight is delayed by 2 hours. New departure: 7:30 PM.",
			AlertType: model.AlertFlight,
			Urgency:   model.UrgencyUrgent,
			ExpiresAt: &in24h,
		},
		{
			UserID:    demo.ID,
			TripID:    &trip.ID,
			Title:     "Weather Alert in Paris",
			Message:   "Heavy rain expected tomorrow afternoon. Consider indoor activities for days 2-3 of your trip.",
			AlertType: model.AlertWeather,
			Urgency:   model.UrgencyNormal,
			ExpiresAt: &in48h,
		},
		{
			UserID:    demo.ID,
			TripID:    &trip.ID,
			Title:     "Special Offer: Seine River Cruise",
			Message:   "20% off for sunset Seine River cruises this week. Perfect addition to your Paris itinerary!",
			AlertType: model.AlertDeal,
			Urgency:   model.UrgencyInfo,
			ExpiresAt: &in72h,
		},
		{
			UserID:    demo.ID,
			TripID:    &trip.ID,
			Title:     "Metro Line 1 Disruption",
			Message:   "Partial closure on Metro Line 1 affecting your route to the Louvre. Alternative routes suggested.",
			AlertType: model.AlertTransport,
			Urgency:   model.UrgencyNormal,
			ExpiresAt: &in24h,
		},
	}
	for _, a := range alerts {
		if _, err := s.CreateAlert(ctx, a); err != nil {
			return fmt.Errorf("seed alert: %w", err)
		}
	}

	bookings := []model.InsertBooking{
		{
			TripID:           trip.ID,
			BookingType:      "flight",
			Title:            "Flight to Paris",
			Provider:         "American Airlines",
			ConfirmationCode: "AA12345",
			StartDate:        time.Date(now.Year(), time.June, 15, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(now.Year(), time.June, 15, 0, 0, 0, 0, time.UTC),
			Location:         "JFK to CDG",
			Cost:             850,
			Details:          map[string]any{"seat": "24A", "terminal": "4", "gate": "B12"},
		},
		{
			TripID:           trip.ID,
			BookingType:      "hotel",
			Title:            "Parisian Hotel",
			Provider:         "Booking.com",
			ConfirmationCode: "BK98765",
			StartDate:        time.Date(now.Year(), time.June, 15, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(now.Year(), time.June, 22, 0, 0, 0, 0, time.UTC),
			Location:         "15 Rue de Rivoli, Paris",
			Cost:             980,
			Details:          map[string]any{"roomType": "Double", "breakfast": true},
		},
		{
			TripID:           trip.ID,
			BookingType:      "resort",
			Title:            "Côte d'Azur Luxury Resort",
			Provider:         "ResortBookings",
			ConfirmationCode: "RB54321",
			StartDate:        time.Date(now.Year(), time.June, 23, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(now.Year(), time.June, 30, 0, 0, 0, 0, time.UTC),
			Location:         "Saint-Tropez, French Riviera",
			Cost:             1650,
			Details: map[string]any{
				"roomType":     "Beach Villa",
				"allInclusive": true,
				"amenities":    []string{"spa", "private beach", "water sports"},
			},
		},
		{
			TripID:           trip.ID,
			BookingType:      "cruise",
			Title:            "Mediterranean Cruise",
			Provider:         "Royal Caribbean",
			ConfirmationCode: "RC78901",
			StartDate:        time.Date(now.Year(), time.August, 10, 0, 0, 0, 0, time.UTC),
			EndDate:          time.Date(now.Year(), time.August, 17, 0, 0, 0, 0, time.UTC),
			Location:         "Mediterranean Sea (Barcelona departure)",
			Cost:             2100,
			Details: map[string]any{
				"cabinType": "Ocean View Suite",
				"package":   "Premium",
				"ports":     []string{"Barcelona", "Nice", "Rome", "Naples", "Sicily"},
			},
		},
	}
	for _, b := range bookings {
		if _, err := s.CreateBooking(ctx, b); err != nil {
			return fmt.Errorf("seed booking: %w", err)
		}
	}

	return nil
}
