package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/internal/testutil"
	"github.com/fastygo/dashboard/pkg/idgen"
	"github.com/fastygo/dashboard/repository/memory"
)

type fixture struct {
	uc       *UseCase
	tasks    *memory.TaskStore
	notes    *memory.NoteStore
	activity *memory.ActivityStore
	clock    *testutil.Clock
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	clock := testutil.NewClock(time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC))
	tasks := memory.NewTaskStore(clock, idgen.NewSequence("task-"), nil)
	notes := memory.NewNoteStore(clock, idgen.NewSequence("note-"), nil)
	activity := memory.NewActivityStore(clock, idgen.NewSequence("act-"), 0)
	return fixture{
		uc:       New(tasks, notes, activity, clock, nil),
		tasks:    tasks,
		notes:    notes,
		activity: activity,
		clock:    clock,
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.Zero(t, f.uc.Stats(ctx).CompletionRate)

	f.tasks.Add(domain.TaskInput{Title: "late", Status: domain.StatusTodo, Priority: domain.PriorityHigh, DueDate: domain.MustParseDate("2026-01-10")})
	f.tasks.Add(domain.TaskInput{Title: "doing", Status: domain.StatusInProgress, Priority: domain.PriorityLow, DueDate: domain.MustParseDate("2026-01-25")})
	f.tasks.Add(domain.TaskInput{Title: "done late", Status: domain.StatusDone, Priority: domain.PriorityHigh, DueDate: domain.MustParseDate("2026-01-01")})
	f.notes.Add(domain.NoteInput{Title: "today", Category: domain.CategoryIdeas})
	f.notes.Replace(append(f.notes.List(), domain.Note{ID: "old", Title: "old", Category: domain.CategoryCode, CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}))

	stats := f.uc.Stats(ctx)
	assert.Equal(t, 3, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.Equal(t, 1, stats.InProgressTasks)
	assert.Equal(t, 1, stats.TodoTasks)
	assert.Equal(t, 33, stats.CompletionRate)
	assert.Equal(t, 1, stats.OverdueTasks)
	assert.Equal(t, 2, stats.TotalNotes)
	assert.Equal(t, 1, stats.NotesToday)
	assert.Equal(t, map[string]int{"high": 2, "low": 1}, stats.ByPriority)
	assert.Equal(t, map[string]int{"ideas": 1, "code": 1}, stats.ByCategory)
}

func TestWeekly_CountsCompletedAt(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a := f.tasks.Add(domain.TaskInput{Title: "a", Priority: domain.PriorityLow})
	b := f.tasks.Add(domain.TaskInput{Title: "b", Priority: domain.PriorityLow})
	done := domain.StatusDone
	todo := domain.StatusTodo

	f.clock.Set(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
	f.tasks.Update(a.ID, domain.TaskPatch{Status: &done})
	// reopened tasks keep their completion day
	f.tasks.Update(a.ID, domain.TaskPatch{Status: &todo})

	f.clock.Set(time.Date(2026, 1, 20, 8, 0, 0, 0, time.UTC))
	f.tasks.Update(b.ID, domain.TaskPatch{Status: &done})
	// outside the window
	f.tasks.Add(domain.TaskInput{Title: "c", Priority: domain.PriorityLow})
	f.tasks.Replace(append(f.tasks.List(), domain.Task{ID: "old", Status: domain.StatusDone, CompletedAt: ptr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))}))

	week := f.uc.Weekly(ctx)
	require.Len(t, week, 7)
	assert.Equal(t, "2026-01-14", week[0].Date.String())
	assert.Equal(t, "Wed", week[0].Day)
	assert.Equal(t, "2026-01-20", week[6].Date.String())

	counts := make([]int, len(week))
	for i, d := range week {
		counts[i] = d.Completed
	}
	assert.Equal(t, []int{0, 1, 0, 0, 0, 0, 1}, counts)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.tasks.Replace(memory.DemoTasks())
	f.activity.Replace(memory.DemoActivities(f.clock.Now()))

	dash := f.uc.Dashboard(ctx)
	assert.LessOrEqual(t, len(dash.Upcoming), UpcomingLimit)
	for _, tv := range dash.Upcoming {
		assert.NotEqual(t, domain.StatusDone, tv.Status)
	}
	assert.Len(t, dash.Activities, ActivityLimit)
	for _, a := range dash.Activities {
		assert.NotEmpty(t, a.When)
	}
	assert.Len(t, dash.Weekly, 7)
}

func ptr[T any](v T) *T { return &v }
