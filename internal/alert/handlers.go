package alert

import (
	"encoding/json"
	"strconv"

	"backend-oneskyquest/internal/model"
	"backend-oneskyquest/internal/store"
	"backend-oneskyquest/internal/stream"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the alert endpoints on the /api group. New alerts are
// pushed to the owner's live feed through the hub; a nil hub disables the
// push without affecting the HTTP behavior.
func RegisterRoutes(r fiber.Router, storage store.Storage, hub *stream.Hub) {
	r.Post("/alerts", func(c *fiber.Ctx) error {
		var req model.InsertAlert
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := req.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		alert, err := storage.CreateAlert(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		if hub != nil {
			if payload, err := json.Marshal(alert); err == nil {
				hub.Broadcast(alert.UserID, payload)
			}
		}
		return c.Status(fiber.StatusCreated).JSON(alert)
	})

	r.Get("/trips/:tripId/alerts", func(c *fiber.Ctx) error {
		tripID, err := strconv.Atoi(c.Params("tripId"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid trip ID")
		}
		alerts, err := storage.GetAlertsByTripID(c.Context(), tripID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(alerts)
	})

	r.Get("/alerts/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid alert ID")
		}
		alert, ok, err := storage.GetAlert(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "alert not found")
		}
		return c.JSON(alert)
	})

	r.Patch("/alerts/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid alert ID")
		}
		var patch model.AlertPatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if patch.AlertType != nil && !patch.AlertType.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid alertType")
		}
		if patch.Urgency != nil && !patch.Urgency.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid urgency")
		}
		alert, ok, err := storage.UpdateAlert(c.Context(), id, patch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "alert not found")
		}
		return c.JSON(alert)
	})

	// Idempotent: marking an already read alert is a no-op success.
	r.Post("/alerts/:id/read", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid alert ID")
		}
		alert, ok, err := storage.MarkAlertAsRead(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "alert not found")
		}
		return c.JSON(alert)
	})

	r.Delete("/alerts/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid alert ID")
		}
		deleted, err := storage.DeleteAlert(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !deleted {
			return fiber.NewError(fiber.StatusNotFound, "alert not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
