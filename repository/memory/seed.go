package memory

import (
	"time"

	"github.com/fastygo/dashboard/domain"
)

// DemoTasks returns the board shown to a fresh install.
func DemoTasks() []domain.Task {
	completed := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	return []domain.Task{
		{
			ID:          "demo-task-1",
			Title:       "Fix login bug",
			Description: "Users unable to login with special characters in password",
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityHigh,
			DueDate:     domain.MustParseDate("2026-01-12"),
			CreatedAt:   time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "demo-task-2",
			Title:       "Design new homepage",
			Description: "Create modern landing page with hero section",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityMedium,
			DueDate:     domain.MustParseDate("2026-01-13"),
			CreatedAt:   time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "demo-task-3",
			Title:       "Write documentation",
			Description: "API documentation for developers",
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityLow,
			DueDate:     domain.MustParseDate("2026-01-14"),
			CreatedAt:   time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "demo-task-4",
			Title:       "Code review PR #123",
			Description: "Review authentication refactor pull request",
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityHigh,
			DueDate:     domain.MustParseDate("2026-01-12"),
			CreatedAt:   time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "demo-task-5",
			Title:       "Update dependencies",
			Description: "Update npm packages to latest versions",
			Status:      domain.StatusDone,
			Priority:    domain.PriorityMedium,
			DueDate:     domain.MustParseDate("2026-01-11"),
			CreatedAt:   time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC),
			CompletedAt: &completed,
		},
	}
}

func DemoNotes() []domain.Note {
	return []domain.Note{
		{
			ID:        "demo-note-1",
			Title:     "Project Ideas",
			Content:   "Brainstorming session for Q1 projects",
			Category:  domain.CategoryIdeas,
			CreatedAt: time.Date(2026, 1, 11, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 1, 11, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "demo-note-2",
			Title:     "Meeting Notes",
			Content:   "Discussion points from team standup",
			Category:  domain.CategoryMeeting,
			CreatedAt: time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        "demo-note-3",
			Title:     "Code Snippets",
			Content:   "Useful React hooks and patterns",
			Category:  domain.CategoryCode,
			CreatedAt: time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 1, 11, 8, 0, 0, 0, time.UTC),
		},
	}
}

// DemoActivities returns a feed relative to now.
func DemoActivities(now time.Time) []domain.Activity {
	return []domain.Activity{
		{ID: "demo-activity-1", Action: "Completed task", Item: "Fix responsive design", Type: domain.ActivityTaskCompleted, Timestamp: now.Add(-2 * time.Hour)},
		{ID: "demo-activity-2", Action: "Created note", Item: "Project ideas brainstorm", Type: domain.ActivityNoteCreated, Timestamp: now.Add(-4 * time.Hour)},
		{ID: "demo-activity-3", Action: "Started task", Item: "Implement dark mode", Type: domain.ActivityTaskStarted, Timestamp: now.Add(-5 * time.Hour)},
		{ID: "demo-activity-4", Action: "Updated profile", Item: "Changed avatar", Type: domain.ActivityProfileUpdated, Timestamp: now.Add(-24 * time.Hour)},
	}
}
