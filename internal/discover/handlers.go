package discover

import (
	"strconv"

	"backend-oneskyquest/internal/model"
	"backend-oneskyquest/internal/store"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the hidden-gem endpoints on the /api group.
func RegisterRoutes(r fiber.Router, storage store.Storage) {
	r.Post("/hidden-gems", func(c *fiber.Ctx) error {
		var req model.InsertHiddenGem
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := req.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		gem, err := storage.CreateHiddenGem(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(gem)
	})

	r.Get("/hidden-gems", func(c *fiber.Ctx) error {
		if location := c.Query("location"); location != "" {
			gems, err := storage.GetHiddenGemsByLocation(c.Context(), location)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			return c.JSON(gems)
		}
		gems, err := storage.GetHiddenGems(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(gems)
	})

	r.Get("/hidden-gems/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid hidden gem ID")
		}
		gem, ok, err := storage.GetHiddenGem(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "hidden gem not found")
		}
		return c.JSON(gem)
	})

	// Gems are standalone; the trip-scoped listing returns the full set so
	// trip pages can surface suggestions without a join.
	r.Get("/trips/:tripId/hidden-gems", func(c *fiber.Ctx) error {
		if _, err := strconv.Atoi(c.Params("tripId")); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid trip ID")
		}
		gems, err := storage.GetHiddenGems(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(gems)
	})
}
