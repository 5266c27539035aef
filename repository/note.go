package repository

import "github.com/fastygo/dashboard/domain"

// NoteRepository owns the note collection. Operations are total: a missing id is a no-op.
type NoteRepository interface {
	Add(input domain.NoteInput) domain.Note
	Update(id string, patch domain.NotePatch) (domain.Note, bool)
	Delete(id string)
	Get(id string) (domain.Note, bool)
	List() []domain.Note
	Recent(limit int) []domain.Note
	Replace(notes []domain.Note)
}
