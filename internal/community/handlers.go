package community

import (
	"strconv"

	"backend-oneskyquest/internal/model"
	"backend-oneskyquest/internal/store"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts community posts and local experts on the /api group.
func RegisterRoutes(r fiber.Router, storage store.Storage) {
	r.Post("/community-posts", func(c *fiber.Ctx) error {
		var req model.InsertCommunityPost
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := req.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		post, err := storage.CreateCommunityPost(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	})

	r.Get("/community-posts", func(c *fiber.Ctx) error {
		posts, err := storage.GetCommunityPosts(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(posts)
	})

	r.Get("/community-posts/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid post ID")
		}
		post, ok, err := storage.GetCommunityPost(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		return c.JSON(post)
	})

	r.Post("/local-experts", func(c *fiber.Ctx) error {
		var req model.InsertLocalExpert
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := req.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		expert, err := storage.CreateLocalExpert(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(expert)
	})

	r.Get("/local-experts", func(c *fiber.Ctx) error {
		if location := c.Query("location"); location != "" {
			experts, err := storage.GetLocalExpertsByLocation(c.Context(), location)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			return c.JSON(experts)
		}
		experts, err := storage.GetLocalExperts(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(experts)
	})

	r.Get("/local-experts/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid expert ID")
		}
		expert, ok, err := storage.GetLocalExpert(c.Context(), id)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "expert not found")
		}
		return c.JSON(expert)
	})
}
