package trip

import (
	"strconv"

	"backend-oneskyquest/internal/model"
	"backend-oneskyquest/internal/store"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts trips and their child resources (itinerary items,
// expenses, bookings) on the /api group. Child records are created with the
// trip id in the body and listed under /trips/:tripId/...; deleting a trip
// leaves its children in place.
func RegisterRoutes(r fiber.Router, storage store.Storage) {
	registerTripRoutes(r, storage)
	registerItineraryRoutes(r, storage)
	registerExpenseRoutes(r, storage)
	registerBookingRoutes(r, storage)
}

func registerTripRoutes(r fiber.Router, storage store.Storage) {
	r.Post("/trips", func(c *fiber.Ctx) error {
		var req model.InsertTrip
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := req.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		trip, err := storage.CreateTrip(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(trip)
	})

	r.Get("/trips", func(c *fiber.Ctx) error {
		trips, err := storage.GetTrips(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(trips)
	})

	r.Get("/trips/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid trip ID")
		}
		trip, ok, err := storage.GetTrip(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}
		return c.JSON(trip)
	})

	r.Patch("/trips/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid trip ID")
		}
		var patch model.TripPatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if patch.Status != nil && !patch.Status.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid trip status")
		}
		trip, ok, err := storage.UpdateTrip(c.Context(), id, patch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}
		return c.JSON(trip)
	})

	r.Delete("/trips/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid trip ID")
		}
		deleted, err := storage.DeleteTrip(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !deleted {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func registerItineraryRoutes(r fiber.Router, storage store.Storage) {
	r.Post("/itinerary", func(c *fiber.Ctx) error {
		var req model.InsertItineraryItem
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := req.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		item, err := storage.CreateItineraryItem(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	})

	r.Get("/trips/:tripId/itinerary", func(c *fiber.Ctx) error {
		tripID, err := strconv.Atoi(c.Params("tripId"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid trip ID")
		}
		items, err := storage.GetItineraryItemsByTripID(c.Context(), tripID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(items)
	})

	r.Get("/itinerary/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid itinerary item ID")
		}
		item, ok, err := storage.GetItineraryItem(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "itinerary item not found")
		}
		return c.JSON(item)
	})

	r.Patch("/itinerary/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid itinerary item ID")
		}
		var patch model.ItineraryItemPatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if patch.ItemType != nil && !patch.ItemType.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid itemType")
		}
		item, ok, err := storage.UpdateItineraryItem(c.Context(), id, patch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "itinerary item not found")
		}
		return c.JSON(item)
	})

	r.Delete("/itinerary/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid itinerary item ID")
		}
		deleted, err := storage.DeleteItineraryItem(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !deleted {
			return fiber.NewError(fiber.StatusNotFound, "itinerary item not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func registerExpenseRoutes(r fiber.Router, storage store.Storage) {
	r.Post("/expenses", func(c *fiber.Ctx) error {
		var req model.InsertExpense
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := req.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		expense, err := storage.CreateExpense(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(expense)
	})

	r.Get("/trips/:tripId/expenses", func(c *fiber.Ctx) error {
		tripID, err := strconv.Atoi(c.Params("tripId"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid trip ID")
		}
		expenses, err := storage.GetExpensesByTripID(c.Context(), tripID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(expenses)
	})

	r.Get("/expenses/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid expense ID")
		}
		expense, ok, err := storage.GetExpense(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "expense not found")
		}
		return c.JSON(expense)
	})

	r.Patch("/expenses/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid expense ID")
		}
		var patch model.ExpensePatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if patch.Category != nil && !patch.Category.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid category")
		}
		if patch.Amount != nil && *patch.Amount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "amount must not be negative")
		}
		expense, ok, err := storage.UpdateExpense(c.Context(), id, patch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "expense not found")
		}
		return c.JSON(expense)
	})

	r.Delete("/expenses/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid expense ID")
		}
		deleted, err := storage.DeleteExpense(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !deleted {
			return fiber.NewError(fiber.StatusNotFound, "expense not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func registerBookingRoutes(r fiber.Router, storage store.Storage) {
	r.Post("/bookings", func(c *fiber.Ctx) error {
		var req model.InsertBooking
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := req.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		booking, err := storage.CreateBooking(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(booking)
	})

	r.Get("/trips/:tripId/bookings", func(c *fiber.Ctx) error {
		tripID, err := strconv.Atoi(c.Params("tripId"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid trip ID")
		}
		bookings, err := storage.GetBookingsByTripID(c.Context(), tripID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(bookings)
	})

	r.Get("/bookings/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid booking ID")
		}
		booking, ok, err := storage.GetBooking(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "booking not found")
		}
		return c.JSON(booking)
	})

	r.Patch("/bookings/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid booking ID")
		}
		var patch model.BookingPatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if patch.Cost != nil && *patch.Cost < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "cost must not be negative")
		}
		booking, ok, err := storage.UpdateBooking(c.Context(), id, patch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "booking not found")
		}
		return c.JSON(booking)
	})

	r.Delete("/bookings/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid booking ID")
		}
		deleted, err := storage.DeleteBooking(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !deleted {
			return fiber.NewError(fiber.StatusNotFound, "booking not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
