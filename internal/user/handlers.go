package user

import (
	"strconv"

	"backend-oneskyquest/internal/model"
	"backend-oneskyquest/internal/store"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the user endpoints on the /api group. Username and
// email uniqueness is enforced here, not in the store.
func RegisterRoutes(r fiber.Router, storage store.Storage) {
	r.Post("/users", func(c *fiber.Ctx) error {
		var req model.InsertUser
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := req.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if _, taken, err := storage.GetUserByUsername(c.Context(), req.Username); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		} else if taken {
			return fiber.NewError(fiber.StatusConflict, "username already taken")
		}
		if _, taken, err := storage.GetUserByEmail(c.Context(), req.Email); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		} else if taken {
			return fiber.NewError(fiber.StatusConflict, "email already registered")
		}

		user, err := storage.CreateUser(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	})

	r.Get("/users/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user ID")
		}
		user, ok, err := storage.GetUser(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return c.JSON(user)
	})

	r.Get("/users/:userId/trips", func(c *fiber.Ctx) error {
		userID, err := strconv.Atoi(c.Params("userId"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user ID")
		}
		trips, err := storage.GetTripsByUserID(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(trips)
	})

	r.Get("/users/:userId/alerts", func(c *fiber.Ctx) error {
		userID, err := strconv.Atoi(c.Params("userId"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user ID")
		}
		alerts, err := storage.GetAlertsByUserID(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(alerts)
	})
}
