package domain

import "time"

// ActivityType classifies an activity entry for display.
type ActivityType string

const (
	ActivityTaskCompleted  ActivityType = "task_completed"
	ActivityTaskStarted    ActivityType = "task_started"
	ActivityNoteCreated    ActivityType = "note_created"
	ActivityProfileUpdated ActivityType = "profile_updated"
)

// Activity is one line of the recent-activity feed.
type Activity struct {
	ID        string       `json:"id"`
	Action    string       `json:"action"`
	Item      string       `json:"item"`
	Type      ActivityType `json:"type"`
	Timestamp time.Time    `json:"timestamp"`
}

// ActivityInput is what callers supply; id and timestamp are assigned on insertion.
type ActivityInput struct {
	Action string       `json:"action"`
	Item   string       `json:"item"`
	Type   ActivityType `json:"type"`
}
