package domain

import (
	"fmt"
	"time"
)

// Export is the user's downloadable backup document.
type Export struct {
	User       *User     `json:"user"`
	Tasks      []Task    `json:"tasks"`
	Notes      []Note    `json:"notes"`
	ExportedAt time.Time `json:"exportedAt"`
}

// ExportFilename is the suggested download name for an export taken at t.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("dashboard-backup-%s.json", t.UTC().Format(dateLayout))
}

// Workspace is the snapshot of every entity store, used when workspace persistence is on.
type Workspace struct {
	Tasks      []Task     `json:"tasks"`
	Notes      []Note     `json:"notes"`
	Activities []Activity `json:"activities"`
	SavedAt    time.Time  `json:"savedAt"`
}
