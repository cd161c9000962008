package controllers

import (
	"log"

	service "notes-server/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type NotificationController struct {
	service *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{service: notificationService}
}

// GetRecent serves the most recent toasts from the Redis-backed history.
func (nc *NotificationController) GetRecent(c *fiber.Ctx) error {
	notifications, err := nc.service.Recent(20)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load notifications"})
	}
	return c.Status(fiber.StatusOK).JSON(notifications)
}

// HandleWebSocket keeps the connection subscribed to toast broadcasts until
// the client goes away. Inbound messages are ignored.
func (nc *NotificationController) HandleWebSocket(c *websocket.Conn) {
	log.Println("Notification client connected")
	nc.service.Subscribe(c)

	defer func() {
		nc.service.RemoveClient(c)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			log.Println("Read error:", err)
			break
		}
	}
}
