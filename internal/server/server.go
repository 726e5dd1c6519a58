package server

import (
	"backend-oneskyquest/internal/alert"
	"backend-oneskyquest/internal/community"
	"backend-oneskyquest/internal/config"
	"backend-oneskyquest/internal/discover"
	"backend-oneskyquest/internal/store"
	"backend-oneskyquest/internal/stream"
	"backend-oneskyquest/internal/trip"
	"backend-oneskyquest/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	App     *fiber.App
	Cfg     config.Config
	Storage store.Storage
	Stream  *stream.Hub
}

func NewServer(cfg config.Config, storage store.Storage, hub *stream.Hub) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:     app,
		Cfg:     cfg,
		Storage: storage,
		Stream:  hub,
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.App.Group("/api")
	user.RegisterRoutes(api, s.Storage)
	trip.RegisterRoutes(api, s.Storage)
	alert.RegisterRoutes(api, s.Storage, s.Stream)
	discover.RegisterRoutes(api, s.Storage)
	community.RegisterRoutes(api, s.Storage)
	stream.RegisterRoutes(api.Group("/stream"), s.Stream)
}
