package main

import (
	"log"
	"os"

	"notes-server/configs"
	"notes-server/controllers"
	"notes-server/repository"
	"notes-server/routes"
	service "notes-server/services"

	fiberprometheus "github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	err := configs.RegisterService(
		"notes-server",
		"notes-server",
		"localhost",
		4000,
		"http://localhost:4000/health",
	)
	if err != nil {
		log.Printf("Consul service registration failed: %v", err)
	}

	configs.ConnectRedis()
	client := configs.ConnectMongo()
	redisClient := configs.GetRedisClient()

	collection := client.Database("mydb").Collection("notes")

	notifier := service.NewNotificationService(redisClient)

	noteRepo := repository.NewNoteRepository(collection)
	noteService := service.NewNoteService(noteRepo, notifier)
	form := service.NewFormController(noteService)

	noteController := controllers.NewNoteController(noteService, form)
	notificationController := controllers.NewNotificationController(notifier)

	app := fiber.New()

	p := fiberprometheus.New("notes-server")

	p.RegisterAt(app, "/metrics")

	app.Use(p.Middleware)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	routes.NoteRoutes(app, noteController)
	routes.NotificationRoutes(app, notificationController)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "UP",
		})
	})

	if err := noteService.Load(); err != nil {
		log.Println("Initial notes load failed:", err)
	}

	log.Printf("Starting server on port %s...", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
