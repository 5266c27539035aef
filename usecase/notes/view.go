package notes

import (
	"time"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/reltime"
)

// View is a list row: the note plus its display title and age.
type View struct {
	domain.Note
	DisplayTitle string `json:"displayTitle"`
	Edited       string `json:"edited"`
}

// Views renders notes for the sidebar list.
func Views(list []domain.Note, now time.Time) []View {
	out := make([]View, len(list))
	for i := range list {
		out[i] = View{
			Note:         list[i],
			DisplayTitle: list[i].DisplayTitle(),
			Edited:       reltime.Format(list[i].UpdatedAt, now),
		}
	}
	return out
}
