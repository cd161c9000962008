package routes

import (
	"notes-server/controllers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func NotificationRoutes(app *fiber.App, notificationController *controllers.NotificationController) {
	app.Get("/notifications", notificationController.GetRecent)
	app.Get("/ws/notifications", websocket.New(notificationController.HandleWebSocket))
}
