package domain

import "time"

// Category groups notes in the sidebar.
type Category string

const (
	CategoryIdeas    Category = "ideas"
	CategoryMeeting  Category = "meeting"
	CategoryCode     Category = "code"
	CategoryPersonal Category = "personal"

	// DefaultCategory is preselected for new notes.
	DefaultCategory = CategoryIdeas
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryIdeas, CategoryMeeting, CategoryCode, CategoryPersonal:
		return true
	default:
		return false
	}
}

// Note is a markdown document. The stored title may be empty.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayTitle falls back to "Untitled" for notes saved without a title.
func (n *Note) DisplayTitle() string {
	if n == nil || n.Title == "" {
		return "Untitled"
	}
	return n.Title
}

type NoteInput struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
}

// NotePatch lists the fields to merge into an existing note. Nil fields are left untouched.
type NotePatch struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Category *Category `json:"category,omitempty"`
}

func (p NotePatch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Category != nil {
		n.Category = *p.Category
	}
}
