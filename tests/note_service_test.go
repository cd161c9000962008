package tests

import (
	"sync"
	"testing"

	"notes-server/models"
	"notes-server/repository"
	service "notes-server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures toasts instead of broadcasting them.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *recordingNotifier) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errors)
}

func setupNoteService() (*service.NoteService, *MockNoteRepository, *recordingNotifier) {
	repo := NewMockNoteRepository()
	notifier := &recordingNotifier{}
	return service.NewNoteService(repo, notifier), repo, notifier
}

func TestSubmitCreateAppendsUnpinnedNote(t *testing.T) {
	svc, _, _ := setupNoteService()

	for i, fields := range []models.NoteFields{
		{Title: "Groceries", Tagline: "weekly", Description: "milk, eggs"},
		{Title: "Ideas", Tagline: "someday", Description: ""},
		{Title: "Standup", Tagline: "daily", Description: "9:30"},
	} {
		note, err := svc.Submit(fields, "")
		require.NoError(t, err)
		assert.NotEmpty(t, note.ID)
		assert.False(t, note.Pinned)
		assert.Len(t, svc.Notes(), i+1)
	}
}

func TestTogglePinTwiceRestoresCollection(t *testing.T) {
	svc, repo, _ := setupNoteService()
	repo.Seed(
		models.Note{Title: "a", Tagline: "t1", Description: "d1"},
		models.Note{Title: "b", Tagline: "t2", Description: "d2", Pinned: true},
		models.Note{Title: "c", Tagline: "t3", Description: "d3"},
	)
	require.NoError(t, svc.Load())

	before := svc.Notes()
	target := before[0]

	toggled, err := svc.TogglePin(target.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Pinned)

	_, err = svc.TogglePin(target.ID)
	require.NoError(t, err)

	assert.Equal(t, before, svc.Notes())
}

func TestDerivedViewPinnedFirst(t *testing.T) {
	svc, repo, _ := setupNoteService()
	repo.Seed(
		models.Note{Title: "a"},
		models.Note{Title: "b", Pinned: true},
		models.Note{Title: "c"},
		models.Note{Title: "d", Pinned: true},
	)
	require.NoError(t, svc.Load())

	view := svc.DerivedView()
	require.Len(t, view.Notes, 4)
	assert.Equal(t, "b", view.Notes[0].Title)
	assert.Equal(t, "d", view.Notes[1].Title)
	assert.Equal(t, "a", view.Notes[2].Title)
	assert.Equal(t, "c", view.Notes[3].Title)
}

func TestPaginationThirteenNotes(t *testing.T) {
	svc, repo, _ := setupNoteService()
	for i := 0; i < 13; i++ {
		repo.Seed(models.Note{Title: "note"})
	}
	require.NoError(t, svc.Load())

	view := svc.DerivedView()
	assert.Equal(t, 3, view.TotalPages)
	assert.Len(t, view.Notes, 6)

	svc.GotoPage(2)
	assert.Len(t, svc.DerivedView().Notes, 6)

	svc.GotoPage(3)
	assert.Len(t, svc.DerivedView().Notes, 1)
}

func TestGotoPageClamps(t *testing.T) {
	svc, repo, _ := setupNoteService()
	for i := 0; i < 13; i++ {
		repo.Seed(models.Note{Title: "note"})
	}
	require.NoError(t, svc.Load())

	assert.Equal(t, 3, svc.GotoPage(99))
	assert.Equal(t, 1, svc.GotoPage(0))
}

func TestEmptyCollectionHasOnePage(t *testing.T) {
	svc, _, _ := setupNoteService()
	require.NoError(t, svc.Load())

	view := svc.DerivedView()
	assert.Equal(t, 1, view.TotalPages)
	assert.Empty(t, view.Notes)
}

func TestDeleteMissingNoteLeavesCollectionUnchanged(t *testing.T) {
	svc, repo, notifier := setupNoteService()
	repo.Seed(models.Note{Title: "keep"})
	require.NoError(t, svc.Load())
	before := svc.Notes()

	err := svc.DeleteNote("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)
	assert.Equal(t, before, svc.Notes())
	assert.Equal(t, 1, notifier.errorCount())
}

func TestCreateThenEdit(t *testing.T) {
	svc, _, _ := setupNoteService()

	created, err := svc.Submit(models.NoteFields{Title: "A", Tagline: "B", Description: "C"}, "")
	require.NoError(t, err)

	notes := svc.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, models.Note{ID: created.ID, Title: "A", Tagline: "B", Description: "C", Pinned: false}, notes[0])

	edited, err := svc.Submit(models.NoteFields{Title: "A2", Tagline: "B", Description: "C"}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Note{ID: created.ID, Title: "A2", Tagline: "B", Description: "C", Pinned: false}, edited)

	notes = svc.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, edited, notes[0])
}

func TestEditPreservesPinnedStatus(t *testing.T) {
	svc, repo, _ := setupNoteService()
	repo.Seed(models.Note{Title: "a", Pinned: true})
	require.NoError(t, svc.Load())
	id := svc.Notes()[0].ID

	edited, err := svc.Submit(models.NoteFields{Title: "a2", Tagline: "t", Description: "d"}, id)
	require.NoError(t, err)
	assert.True(t, edited.Pinned)
}

func TestFailedUpdateLeavesNoteUnchanged(t *testing.T) {
	svc, _, notifier := setupNoteService()

	created, err := svc.Submit(models.NoteFields{Title: "A", Tagline: "B", Description: "C"}, "")
	require.NoError(t, err)
	before := svc.Notes()

	_, err = svc.Submit(models.NoteFields{Title: "fail", Tagline: "B", Description: "C"}, created.ID)
	require.Error(t, err)
	assert.Equal(t, before, svc.Notes())
	assert.Equal(t, 1, notifier.errorCount())
}

func TestFailedPinToggleLeavesNoteUnchanged(t *testing.T) {
	svc, repo, notifier := setupNoteService()
	repo.Seed(models.Note{Title: "a"})
	require.NoError(t, svc.Load())
	before := svc.Notes()

	repo.PinErr = &repository.StoreError{Op: "update pinned", Err: assert.AnError}
	_, err := svc.TogglePin(before[0].ID)
	require.Error(t, err)
	assert.Equal(t, before, svc.Notes())
	assert.Equal(t, 1, notifier.errorCount())
}

func TestLoadIsIdempotent(t *testing.T) {
	svc, repo, _ := setupNoteService()
	repo.Seed(
		models.Note{Title: "a", Tagline: "t", Description: "d"},
		models.Note{Title: "b", Pinned: true},
	)

	require.NoError(t, svc.Load())
	first := svc.Notes()

	require.NoError(t, svc.Load())
	assert.Equal(t, first, svc.Notes())
}

func TestLoadFailureKeepsPreviousCollection(t *testing.T) {
	svc, repo, notifier := setupNoteService()
	repo.Seed(models.Note{Title: "a"})
	require.NoError(t, svc.Load())
	before := svc.Notes()

	repo.FailList = true
	require.Error(t, svc.Load())
	assert.Equal(t, before, svc.Notes())
	assert.False(t, svc.Loading())
	assert.Equal(t, 1, notifier.errorCount())
}

func TestDeleteRemovesSingleMatch(t *testing.T) {
	svc, repo, _ := setupNoteService()
	repo.Seed(
		models.Note{Title: "a"},
		models.Note{Title: "b"},
		models.Note{Title: "c"},
	)
	require.NoError(t, svc.Load())
	id := svc.Notes()[1].ID

	require.NoError(t, svc.DeleteNote(id))

	notes := svc.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].Title)
	assert.Equal(t, "c", notes[1].Title)
}
