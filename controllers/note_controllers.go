package controllers

import (
	"errors"

	"notes-server/models"
	"notes-server/repository"
	service "notes-server/services"

	"github.com/gofiber/fiber/v2"
)

type NoteController struct {
	service *service.NoteService
	form    *service.FormController
}

func NewNoteController(noteService *service.NoteService, form *service.FormController) *NoteController {
	return &NoteController{service: noteService, form: form}
}

// GetNotes serves the derived paginated view. An optional page query
// parameter selects the page first (clamped to the valid range).
func (nc *NoteController) GetNotes(c *fiber.Ctx) error {
	if page := c.QueryInt("page"); page > 0 {
		nc.service.GotoPage(page)
	}
	return c.Status(fiber.StatusOK).JSON(nc.service.DerivedView())
}

func (nc *NoteController) CreateNote(c *fiber.Ctx) error {
	var fields models.NoteFields
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	nc.form.Open(nil)
	nc.form.SetFields(fields.Title, fields.Tagline, fields.Description)
	note, err := nc.form.Submit()
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save note"})
	}

	return c.Status(fiber.StatusCreated).JSON(note)
}

func (nc *NoteController) UpdateNote(c *fiber.Ctx) error {
	id := c.Params("id")
	existing, ok := nc.service.Note(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
	}

	var fields models.NoteFields
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	nc.form.Open(&existing)
	nc.form.SetFields(fields.Title, fields.Tagline, fields.Description)
	note, err := nc.form.Submit()
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
		}
		if errors.Is(err, repository.ErrNoteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update note"})
	}

	return c.Status(fiber.StatusOK).JSON(note)
}

func (nc *NoteController) TogglePin(c *fiber.Ctx) error {
	id := c.Params("id")
	note, err := nc.service.TogglePin(id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update pin status"})
	}
	return c.Status(fiber.StatusOK).JSON(note)
}

func (nc *NoteController) DeleteNote(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := nc.service.DeleteNote(id); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete note"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

// RefreshNotes re-runs the full fetch and serves the resulting view.
func (nc *NoteController) RefreshNotes(c *fiber.Ctx) error {
	if err := nc.service.Load(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load notes"})
	}
	return c.Status(fiber.StatusOK).JSON(nc.service.DerivedView())
}
