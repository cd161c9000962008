package service

import (
	"log"
	"sync"

	"notes-server/models"
	"notes-server/repository"
)

const notesPerPage = 6

// PageView is the derived, paginated projection served to the presentation
// layer: pinned notes first, then unpinned, each partition in fetch order.
type PageView struct {
	Notes      []models.Note `json:"notes"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Loading    bool          `json:"loading"`
}

// NoteService owns the in-memory note collection for the session. It is the
// single source of truth for rendering; every mutation goes through the store
// first and touches local state only after the remote call succeeds. Remote
// calls run outside the lock, so concurrent operations interleave and the
// last write wins.
type NoteService struct {
	repo     repository.NoteRepositoryInterface
	notifier Notifier

	mu          sync.RWMutex
	notes       []models.Note
	currentPage int
	loading     bool
}

func NewNoteService(repo repository.NoteRepositoryInterface, notifier Notifier) *NoteService {
	return &NoteService{
		repo:        repo,
		notifier:    notifier,
		notes:       []models.Note{},
		currentPage: 1,
	}
}

// Load replaces the collection wholesale from the store. On failure the
// previous collection is kept and the error is surfaced; there is no retry.
func (s *NoteService) Load() error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	notes, err := s.repo.FindAllNotes()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		log.Println("Error fetching notes:", err)
		s.notifier.Error("Failed to load notes!!")
		return err
	}
	s.notes = notes
	return nil
}

// Submit creates a new note when editingID is empty, otherwise applies the
// fields to the note with that id. The collection is only mutated after the
// store confirms; an edited note keeps its pinned status untouched.
func (s *NoteService) Submit(fields models.NoteFields, editingID string) (models.Note, error) {
	if editingID != "" {
		if err := s.repo.UpdateNoteFields(editingID, fields); err != nil {
			log.Println("Error updating document:", err)
			s.notifier.Error("Error!!")
			return models.Note{}, err
		}

		s.mu.Lock()
		updated := models.Note{}
		notes := make([]models.Note, len(s.notes))
		for i, note := range s.notes {
			if note.ID == editingID {
				note.Title = fields.Title
				note.Tagline = fields.Tagline
				note.Description = fields.Description
				updated = note
			}
			notes[i] = note
		}
		s.notes = notes
		s.mu.Unlock()

		s.notifier.Success("Note edit successful!!")
		return updated, nil
	}

	note, err := s.repo.InsertNote(fields)
	if err != nil {
		log.Println("Error adding document:", err)
		s.notifier.Error("Error!!")
		return models.Note{}, err
	}

	s.mu.Lock()
	s.notes = append(s.notes, note)
	s.mu.Unlock()

	s.notifier.Success("Note added!!")
	return note, nil
}

// TogglePin flips the pinned flag of the matching note. The store is updated
// first; on success exactly that note is flipped and every other note's
// pinned value is copied unchanged.
func (s *NoteService) TogglePin(id string) (models.Note, error) {
	current, ok := s.Note(id)
	if !ok {
		s.notifier.Error("Error!!")
		return models.Note{}, repository.ErrNoteNotFound
	}
	target := !current.Pinned

	if err := s.repo.UpdateNotePinned(id, target); err != nil {
		log.Println("Error updating pin status:", err)
		s.notifier.Error("Error!!")
		return models.Note{}, err
	}

	s.mu.Lock()
	toggled := models.Note{}
	notes := make([]models.Note, len(s.notes))
	for i, note := range s.notes {
		if note.ID == id {
			note.Pinned = target
			toggled = note
		}
		notes[i] = note
	}
	s.notes = notes
	s.mu.Unlock()

	if target {
		s.notifier.Success("Note pinned!!")
	} else {
		s.notifier.Success("Note unpinned!!")
	}
	return toggled, nil
}

// DeleteNote removes the single note with the matching id after the store
// confirms the delete. An unknown id surfaces as an error; the collection is
// left as it was.
func (s *NoteService) DeleteNote(id string) error {
	if err := s.repo.DeleteNoteByID(id); err != nil {
		log.Println("Error deleting the note:", err)
		s.notifier.Error("Error!!")
		return err
	}

	s.mu.Lock()
	notes := make([]models.Note, 0, len(s.notes))
	for _, note := range s.notes {
		if note.ID != id {
			notes = append(notes, note)
		}
	}
	s.notes = notes
	s.mu.Unlock()

	s.notifier.Success("Note deleted!!")
	return nil
}

// DerivedView partitions the collection pinned-first (stable, each partition
// keeping its fetch order) and slices out the current page.
func (s *NoteService) DerivedView() PageView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pinned := []models.Note{}
	unpinned := []models.Note{}
	for _, note := range s.notes {
		if note.Pinned {
			pinned = append(pinned, note)
		} else {
			unpinned = append(unpinned, note)
		}
	}
	combined := append(pinned, unpinned...)

	first := (s.currentPage - 1) * notesPerPage
	last := s.currentPage * notesPerPage
	if first > len(combined) {
		first = len(combined)
	}
	if last > len(combined) {
		last = len(combined)
	}

	return PageView{
		Notes:      combined[first:last],
		Page:       s.currentPage,
		TotalPages: s.totalPagesLocked(),
		Loading:    s.loading,
	}
}

// GotoPage clamps n to the valid page range and returns the page selected.
func (s *NoteService) GotoPage(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 1 {
		n = 1
	}
	if total := s.totalPagesLocked(); n > total {
		n = total
	}
	s.currentPage = n
	return n
}

func (s *NoteService) totalPagesLocked() int {
	total := (len(s.notes) + notesPerPage - 1) / notesPerPage
	if total < 1 {
		total = 1
	}
	return total
}

// Note returns a copy of the note with the given id from the in-memory
// collection.
func (s *NoteService) Note(id string) (models.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, note := range s.notes {
		if note.ID == id {
			return note, true
		}
	}
	return models.Note{}, false
}

// Notes returns a snapshot copy of the collection in fetch order.
func (s *NoteService) Notes() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]models.Note, len(s.notes))
	copy(notes, s.notes)
	return notes
}

func (s *NoteService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
