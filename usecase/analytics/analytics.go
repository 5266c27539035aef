// Package analytics derives the dashboard and analytics read models from the stores.
package analytics

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/reltime"
	"github.com/fastygo/dashboard/repository"
)

const (
	UpcomingLimit = 5
	ActivityLimit = 4
	weekDays      = 7
)

// Stats is the summary shown on the dashboard and analytics pages.
type Stats struct {
	TotalTasks      int            `json:"totalTasks"`
	CompletedTasks  int            `json:"completedTasks"`
	InProgressTasks int            `json:"inProgressTasks"`
	TodoTasks       int            `json:"todoTasks"`
	CompletionRate  int            `json:"completionRate"`
	OverdueTasks    int            `json:"overdueTasks"`
	TotalNotes      int            `json:"totalNotes"`
	NotesToday      int            `json:"notesToday"`
	ByPriority      map[string]int `json:"byPriority"`
	ByCategory      map[string]int `json:"byCategory"`
}

// DayCount is one bar of the weekly chart.
type DayCount struct {
	Date      domain.Date `json:"date"`
	Day       string      `json:"day"`
	Completed int         `json:"completed"`
}

// ActivityView is an activity entry with its age rendered for display.
type ActivityView struct {
	domain.Activity
	When string `json:"when"`
}

// TaskView is an upcoming task with its due state.
type TaskView struct {
	domain.Task
	Overdue bool `json:"overdue"`
}

type Dashboard struct {
	Stats      Stats          `json:"stats"`
	Weekly     []DayCount     `json:"weekly"`
	Upcoming   []TaskView     `json:"upcoming"`
	Activities []ActivityView `json:"activities"`
}

type UseCase struct {
	tasks    repository.TaskRepository
	notes    repository.NoteRepository
	activity repository.ActivityRepository
	clock    domain.Clock
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, notes repository.NoteRepository, activity repository.ActivityRepository, clock domain.Clock, logger *zap.Logger) *UseCase {
	if clock == nil {
		clock = domain.RealClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		notes:    notes,
		activity: activity,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *UseCase) Stats(_ context.Context) Stats {
	now := uc.clock.Now()
	today := domain.NewDate(now)

	stats := Stats{
		ByPriority: map[string]int{},
		ByCategory: map[string]int{},
	}
	for _, t := range uc.tasks.List() {
		stats.TotalTasks++
		switch t.Status {
		case domain.StatusDone:
			stats.CompletedTasks++
		case domain.StatusInProgress:
			stats.InProgressTasks++
		case domain.StatusTodo:
			stats.TodoTasks++
		}
		if t.IsOverdue(today) {
			stats.OverdueTasks++
		}
		stats.ByPriority[string(t.Priority)]++
	}
	stats.CompletionRate = percent(stats.CompletedTasks, stats.TotalTasks)

	for _, n := range uc.notes.List() {
		stats.TotalNotes++
		if domain.NewDate(n.CreatedAt.In(now.Location())).Equal(today) {
			stats.NotesToday++
		}
		stats.ByCategory[string(n.Category)]++
	}
	return stats
}

// Weekly counts completions per day over the last seven days, oldest first.
func (uc *UseCase) Weekly(_ context.Context) []DayCount {
	now := uc.clock.Now()
	today := domain.NewDate(now)
	first := today.AddDays(-(weekDays - 1))

	days := make([]DayCount, weekDays)
	for i := range days {
		d := first.AddDays(i)
		days[i] = DayCount{Date: d, Day: d.Weekday().String()[:3]}
	}
	for _, t := range uc.tasks.List() {
		if t.CompletedAt == nil {
			continue
		}
		done := domain.NewDate(t.CompletedAt.In(now.Location()))
		if done.Before(first) || today.Before(done) {
			continue
		}
		idx := int(done.Time().Sub(first.Time()).Hours() / 24)
		days[idx].Completed++
	}
	return days
}

// Upcoming returns the first open tasks by due date.
func (uc *UseCase) Upcoming(_ context.Context, limit int) []TaskView {
	today := domain.NewDate(uc.clock.Now())
	tasks := uc.tasks.Upcoming()
	if limit > 0 && len(tasks) > limit {
		tasks = tasks[:limit]
	}
	out := make([]TaskView, len(tasks))
	for i, t := range tasks {
		out[i] = TaskView{Task: t, Overdue: t.IsOverdue(today)}
	}
	return out
}

func (uc *UseCase) Activities(_ context.Context, limit int) []ActivityView {
	now := uc.clock.Now()
	entries := uc.activity.Recent(limit)
	out := make([]ActivityView, len(entries))
	for i, a := range entries {
		out[i] = ActivityView{Activity: a, When: reltime.Format(a.Timestamp, now)}
	}
	return out
}

func (uc *UseCase) Dashboard(ctx context.Context) Dashboard {
	return Dashboard{
		Stats:      uc.Stats(ctx),
		Weekly:     uc.Weekly(ctx),
		Upcoming:   uc.Upcoming(ctx, UpcomingLimit),
		Activities: uc.Activities(ctx, ActivityLimit),
	}
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
