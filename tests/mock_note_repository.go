package tests

import (
	"errors"
	"sync"

	"notes-server/models"
	"notes-server/repository"
	"notes-server/utils"
)

// MockNoteRepository is an in-memory stand-in for the Mongo-backed
// repository. It keeps insertion order, which the service relies on.
// A title or id of "fail" forces the corresponding call to fail.
type MockNoteRepository struct {
	mu       sync.RWMutex
	notes    []models.Note
	FailList bool
	PinErr   error
}

func NewMockNoteRepository() *MockNoteRepository {
	return &MockNoteRepository{notes: []models.Note{}}
}

// Seed loads notes directly into the mock store, assigning ids to any note
// that lacks one.
func (m *MockNoteRepository) Seed(notes ...models.Note) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, note := range notes {
		if note.ID == "" {
			note.ID = utils.GenerateID()
		}
		m.notes = append(m.notes, note)
	}
}

func (m *MockNoteRepository) FindAllNotes() ([]models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FailList {
		return nil, &repository.StoreError{Op: "find all", Err: errors.New("failed to load notes")}
	}
	notes := make([]models.Note, len(m.notes))
	copy(notes, m.notes)
	return notes, nil
}

func (m *MockNoteRepository) InsertNote(fields models.NoteFields) (models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if fields.Title == "fail" {
		return models.Note{}, &repository.StoreError{Op: "insert", Err: errors.New("failed to save note")}
	}
	note := models.Note{
		ID:          utils.GenerateID(),
		Title:       fields.Title,
		Tagline:     fields.Tagline,
		Description: fields.Description,
		Pinned:      false,
	}
	m.notes = append(m.notes, note)
	return note, nil
}

func (m *MockNoteRepository) UpdateNoteFields(id string, fields models.NoteFields) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if fields.Title == "fail" {
		return &repository.StoreError{Op: "update fields", Err: errors.New("failed to update note")}
	}
	for i, note := range m.notes {
		if note.ID == id {
			m.notes[i].Title = fields.Title
			m.notes[i].Tagline = fields.Tagline
			m.notes[i].Description = fields.Description
			return nil
		}
	}
	return &repository.StoreError{Op: "update fields", Err: repository.ErrNoteNotFound}
}

func (m *MockNoteRepository) UpdateNotePinned(id string, pinned bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PinErr != nil {
		return m.PinErr
	}
	for i, note := range m.notes {
		if note.ID == id {
			m.notes[i].Pinned = pinned
			return nil
		}
	}
	return &repository.StoreError{Op: "update pinned", Err: repository.ErrNoteNotFound}
}

func (m *MockNoteRepository) DeleteNoteByID(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "fail" {
		return &repository.StoreError{Op: "delete", Err: errors.New("failed to delete note")}
	}
	for i, note := range m.notes {
		if note.ID == id {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return nil
		}
	}
	return &repository.StoreError{Op: "delete", Err: repository.ErrNoteNotFound}
}
