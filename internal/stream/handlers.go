package stream

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func RegisterRoutes(r fiber.Router, hub *Hub) {
	r.Get("/alerts/:userId", func(c *fiber.Ctx) error {
		if _, err := strconv.Atoi(c.Params("userId")); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user ID")
		}
		return c.Next()
	}, websocket.New(func(c *websocket.Conn) {
		userID, _ := strconv.Atoi(c.Params("userId"))
		client := hub.Register(userID)

		done := make(chan struct{})
		go func() {
			for msg := range client.Send {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					break
				}
			}
			close(done)
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}

		// Unregister closes the send channel, which ends the write loop.
		hub.Unregister(client)
		<-done
	}))
}
