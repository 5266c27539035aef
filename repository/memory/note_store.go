package memory

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/idgen"
	"github.com/fastygo/dashboard/repository"
)

// NoteStore keeps notes newest-created first.
type NoteStore struct {
	mu     sync.RWMutex
	notes  []domain.Note
	clock  domain.Clock
	ids    domain.IDGenerator
	logger *zap.Logger
}

func NewNoteStore(clock domain.Clock, ids domain.IDGenerator, logger *zap.Logger) *NoteStore {
	if clock == nil {
		clock = domain.RealClock{}
	}
	if ids == nil {
		ids = idgen.UUID{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteStore{clock: clock, ids: ids, logger: logger}
}

// Add prepends a note. No field is validated; an empty title is stored as is.
func (s *NoteStore) Add(input domain.NoteInput) domain.Note {
	now := s.clock.Now()
	note := domain.Note{
		ID:        s.ids.NewID(),
		Title:     input.Title,
		Content:   input.Content,
		Category:  input.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.notes = slices.Insert(s.notes, 0, note)
	s.mu.Unlock()

	s.logger.Debug("note added", zap.String("note_id", note.ID))
	return note
}

// Update merges patch and always bumps UpdatedAt, even when nothing changed.
func (s *NoteStore) Update(id string, patch domain.NotePatch) (domain.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Note{}, false
	}
	note := s.notes[i]
	patch.Apply(&note)
	note.UpdatedAt = s.clock.Now()
	s.notes[i] = note

	s.logger.Debug("note updated", zap.String("note_id", id))
	return note, true
}

func (s *NoteStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = slices.DeleteFunc(s.notes, func(n domain.Note) bool { return n.ID == id })
}

func (s *NoteStore) Get(id string) (domain.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.notes[i], true
	}
	return domain.Note{}, false
}

func (s *NoteStore) List() []domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notes)
}

// Recent returns up to limit notes by descending UpdatedAt; ties keep collection order.
func (s *NoteStore) Recent(limit int) []domain.Note {
	notes := s.List()
	slices.SortStableFunc(notes, func(a, b domain.Note) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return truncate(notes, limit)
}

func (s *NoteStore) Replace(notes []domain.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = slices.Clone(notes)
}

func (s *NoteStore) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n domain.Note) bool { return n.ID == id })
}

func truncate[T any](items []T, limit int) []T {
	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

var _ repository.NoteRepository = (*NoteStore)(nil)
