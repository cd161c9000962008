package service

import (
	"fmt"
	"sync"

	"notes-server/models"
)

// ValidationError reports a required form field that was left empty. It is
// raised before any store call is issued.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// FormController holds the transient input state for the create/edit modal:
// the three text fields plus the "note being edited, or none" selection.
type FormController struct {
	service *NoteService

	mu          sync.Mutex
	title       string
	tagline     string
	description string
	editing     *models.Note
	open        bool
}

func NewFormController(service *NoteService) *FormController {
	return &FormController{service: service}
}

// Open enters edit mode pre-populated from the given note, or create mode
// with empty fields when note is nil.
func (f *FormController) Open(note *models.Note) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if note != nil {
		copied := *note
		f.editing = &copied
		f.title = note.Title
		f.tagline = note.Tagline
		f.description = note.Description
	} else {
		f.editing = nil
		f.title = ""
		f.tagline = ""
		f.description = ""
	}
	f.open = true
}

func (f *FormController) SetFields(title, tagline, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.title = title
	f.tagline = tagline
	f.description = description
}

// Submit validates that title and tagline are non-empty (description may be
// empty) and delegates to the note service. The form closes only on success;
// a failed submit leaves it open with its fields intact.
func (f *FormController) Submit() (models.Note, error) {
	f.mu.Lock()
	fields := models.NoteFields{
		Title:       f.title,
		Tagline:     f.tagline,
		Description: f.description,
	}
	editingID := ""
	if f.editing != nil {
		editingID = f.editing.ID
	}
	f.mu.Unlock()

	if fields.Title == "" {
		return models.Note{}, &ValidationError{Field: "title"}
	}
	if fields.Tagline == "" {
		return models.Note{}, &ValidationError{Field: "tagline"}
	}

	note, err := f.service.Submit(fields, editingID)
	if err != nil {
		return models.Note{}, err
	}
	f.Close()
	return note, nil
}

// Close resets the fields and clears the edit selection.
func (f *FormController) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.title = ""
	f.tagline = ""
	f.description = ""
	f.editing = nil
	f.open = false
}

func (f *FormController) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// Editing returns the note currently selected for editing, if any.
func (f *FormController) Editing() (models.Note, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.editing == nil {
		return models.Note{}, false
	}
	return *f.editing, true
}

// Fields returns the current input state.
func (f *FormController) Fields() models.NoteFields {
	f.mu.Lock()
	defer f.mu.Unlock()

	return models.NoteFields{
		Title:       f.title,
		Tagline:     f.tagline,
		Description: f.description,
	}
}
