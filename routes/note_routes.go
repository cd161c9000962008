package routes

import (
	"notes-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func NoteRoutes(app *fiber.App, noteController *controllers.NoteController) {
	app.Get("/notes", noteController.GetNotes)
	app.Post("/note", noteController.CreateNote)
	app.Put("/note/:id", noteController.UpdateNote)
	app.Patch("/note/:id/pin", noteController.TogglePin)
	app.Delete("/note/:id", noteController.DeleteNote)
	app.Post("/refresh", noteController.RefreshNotes)
}
