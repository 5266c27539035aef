// Package notes holds the note editor: a draft buffer kept apart from the saved
// note until an explicit save.
package notes

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/logger"
	"github.com/fastygo/dashboard/repository"
	"github.com/fastygo/dashboard/usecase"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// Draft is the editor-local copy of a note's fields.
type Draft struct {
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Category domain.Category `json:"category"`
}

func blankDraft() Draft {
	return Draft{Category: domain.DefaultCategory}
}

func draftOf(n domain.Note) Draft {
	return Draft{Title: n.Title, Content: n.Content, Category: n.Category}
}

// DraftPatch changes draft fields. Nil fields are left untouched.
type DraftPatch struct {
	Title    *string          `json:"title,omitempty"`
	Content  *string          `json:"content,omitempty"`
	Category *domain.Category `json:"category,omitempty"`
}

// Filter narrows the note list.
type Filter struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

// Matches reports whether a note is visible under the filter.
func (f Filter) Matches(n domain.Note) bool {
	if f.Category != "" && f.Category != CategoryAll && string(n.Category) != f.Category {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q)
}

// State is a read-only view of the editor.
type State struct {
	SelectedID string `json:"selectedId,omitempty"`
	// Composing is true while the draft belongs to a note that was never saved.
	Composing bool   `json:"composing"`
	Draft     Draft  `json:"draft"`
	Editing   bool   `json:"editing"`
	Preview   bool   `json:"preview"`
	Filter    Filter `json:"filter"`
}

// Editor is the note page state machine. Only Save and Delete touch the store.
type Editor struct {
	notes    repository.NoteRepository
	activity repository.ActivityRepository
	notifier usecase.Notifier
	logger   *zap.Logger

	mu         sync.Mutex
	selectedID string
	composing  bool
	draft      Draft
	editing    bool
	preview    bool
	filter     Filter
}

func NewEditor(notes repository.NoteRepository, activity repository.ActivityRepository, notifier usecase.Notifier, logger *zap.Logger) *Editor {
	if notifier == nil {
		notifier = usecase.NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor{
		notes:    notes,
		activity: activity,
		notifier: notifier,
		logger:   logger,
		draft:    blankDraft(),
		filter:   Filter{Category: CategoryAll},
	}
}

// New starts a blank draft in edit mode.
func (e *Editor) New(_ context.Context) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selectedID = ""
	e.composing = true
	e.draft = blankDraft()
	e.editing = true
	e.preview = false
	return e.stateLocked()
}

// Select loads a saved note into the draft in view mode. Unknown ids leave the editor as is.
func (e *Editor) Select(_ context.Context, id string) (State, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	note, ok := e.notes.Get(id)
	if !ok {
		return e.stateLocked(), false
	}
	e.selectedID = note.ID
	e.composing = false
	e.draft = draftOf(note)
	e.editing = false
	e.preview = false
	return e.stateLocked(), true
}

// Edit switches to edit mode without touching the store.
func (e *Editor) Edit(_ context.Context) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selectedID == "" && !e.composing {
		return e.stateLocked(), domain.ErrNothingSelected
	}
	e.editing = true
	return e.stateLocked(), nil
}

// Change applies a patch to the draft only.
func (e *Editor) Change(_ context.Context, patch DraftPatch) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if patch.Title != nil {
		e.draft.Title = *patch.Title
	}
	if patch.Content != nil {
		e.draft.Content = *patch.Content
	}
	if patch.Category != nil {
		e.draft.Category = *patch.Category
	}
	return e.stateLocked()
}

// InsertSyntax appends a markdown snippet to the draft content.
func (e *Editor) InsertSyntax(_ context.Context, syntax string) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Content += syntax
	return e.stateLocked()
}

func (e *Editor) TogglePreview(_ context.Context) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.preview = !e.preview
	return e.stateLocked()
}

// Save writes the draft through the store. A blank title is rejected before the store is called.
func (e *Editor) Save(ctx context.Context) (domain.Note, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	log := logger.WithRequestID(ctx, e.logger)

	if strings.TrimSpace(e.draft.Title) == "" {
		e.notifier.Error(domain.ErrTitleRequired.Message)
		return domain.Note{}, domain.ErrTitleRequired
	}
	if e.selectedID == "" && !e.composing {
		return domain.Note{}, domain.ErrNothingSelected
	}

	if e.selectedID != "" {
		title, content, category := e.draft.Title, e.draft.Content, e.draft.Category
		note, ok := e.notes.Update(e.selectedID, domain.NotePatch{Title: &title, Content: &content, Category: &category})
		if ok {
			e.notifier.Success("Note updated!")
			e.activity.Add(domain.ActivityInput{Action: "Updated note", Item: note.Title, Type: domain.ActivityNoteCreated})
			e.editing = false
			log.Info("note updated", zap.String("note_id", note.ID))
			return note, nil
		}
		// the note was deleted underneath the editor; keep the draft as a new note
		log.Warn("selected note vanished, saving draft as new", zap.String("note_id", e.selectedID))
	}

	note := e.notes.Add(domain.NoteInput{Title: e.draft.Title, Content: e.draft.Content, Category: e.draft.Category})
	e.selectedID = note.ID
	e.composing = false
	e.editing = false
	e.notifier.Success("Note created!")
	e.activity.Add(domain.ActivityInput{Action: "Created note", Item: note.Title, Type: domain.ActivityNoteCreated})
	log.Info("note created", zap.String("note_id", note.ID))
	return note, nil
}

// Cancel discards the draft. A saved note reverts to its stored fields; an
// unsaved one clears the selection.
func (e *Editor) Cancel(_ context.Context) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editing = false
	e.preview = false
	if e.selectedID != "" {
		if note, ok := e.notes.Get(e.selectedID); ok {
			e.draft = draftOf(note)
			return e.stateLocked()
		}
	}
	e.clearLocked()
	return e.stateLocked()
}

// Delete removes a note. A missing id is a no-op.
func (e *Editor) Delete(ctx context.Context, id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	note, ok := e.notes.Get(id)
	if !ok {
		return false
	}
	e.notes.Delete(id)
	e.notifier.Success("Note deleted")
	e.activity.Add(domain.ActivityInput{Action: "Deleted note", Item: note.Title, Type: domain.ActivityNoteCreated})
	if e.selectedID == id {
		e.clearLocked()
	}
	logger.WithRequestID(ctx, e.logger).Info("note deleted", zap.String("note_id", id))
	return true
}

func (e *Editor) SetFilter(_ context.Context, f Filter) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if f.Category == "" {
		f.Category = CategoryAll
	}
	e.filter = f
	return e.stateLocked()
}

// Visible lists notes matching the current filter in store order.
func (e *Editor) Visible(_ context.Context) []domain.Note {
	e.mu.Lock()
	f := e.filter
	e.mu.Unlock()

	all := e.notes.List()
	out := make([]domain.Note, 0, len(all))
	for _, n := range all {
		if f.Matches(n) {
			out = append(out, n)
		}
	}
	return out
}

func (e *Editor) State(_ context.Context) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Editor) clearLocked() {
	e.selectedID = ""
	e.composing = false
	e.draft = blankDraft()
	e.editing = false
	e.preview = false
}

func (e *Editor) stateLocked() State {
	return State{
		SelectedID: e.selectedID,
		Composing:  e.composing,
		Draft:      e.draft,
		Editing:    e.editing,
		Preview:    e.preview,
		Filter:     e.filter,
	}
}
