package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/internal/testutil"
	"github.com/fastygo/dashboard/pkg/idgen"
)

var t0 = time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)

func newTaskStore(t *testing.T) (*TaskStore, *testutil.Clock) {
	t.Helper()
	clock := testutil.NewClock(t0)
	return NewTaskStore(clock, idgen.NewSequence("task-"), nil), clock
}

func statusPtr(s domain.Status) *domain.Status { return &s }

func TestTaskStore_Add(t *testing.T) {
	store, _ := newTaskStore(t)

	task := store.Add(domain.TaskInput{Title: "Ship release", Priority: domain.PriorityHigh, DueDate: domain.MustParseDate("2026-02-01")})

	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, domain.StatusTodo, task.Status)
	assert.Equal(t, t0, task.CreatedAt)
	assert.Nil(t, task.CompletedAt)
	assert.Len(t, store.List(), 1)
}

func TestTaskStore_Add_NoValidation(t *testing.T) {
	store, _ := newTaskStore(t)
	task := store.Add(domain.TaskInput{})
	assert.Equal(t, "", task.Title)
	assert.Len(t, store.List(), 1)
}

func TestTaskStore_Add_DoneStampsCompletedAt(t *testing.T) {
	store, _ := newTaskStore(t)
	task := store.Add(domain.TaskInput{Title: "x", Status: domain.StatusDone})
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, t0, *task.CompletedAt)
}

func TestTaskStore_Update_MissingIsNoop(t *testing.T) {
	store, _ := newTaskStore(t)
	store.Add(domain.TaskInput{Title: "a"})
	before := store.List()

	_, ok := store.Update("nope", domain.TaskPatch{Status: statusPtr(domain.StatusDone)})

	assert.False(t, ok)
	assert.Equal(t, before, store.List())
}

func TestTaskStore_CompletedAtMonotonic(t *testing.T) {
	store, clock := newTaskStore(t)
	task := store.Add(domain.TaskInput{Title: "a"})

	sequence := []domain.Status{
		domain.StatusInProgress,
		domain.StatusDone,
		domain.StatusTodo,
		domain.StatusDone,
		domain.StatusInProgress,
		domain.StatusDone,
	}

	var firstDone *time.Time
	for _, status := range sequence {
		now := clock.Advance(time.Minute)
		updated, ok := store.Update(task.ID, domain.TaskPatch{Status: statusPtr(status)})
		require.True(t, ok)
		assert.Equal(t, status, updated.Status)

		if firstDone == nil && status == domain.StatusDone {
			firstDone = &now
		}
		if firstDone == nil {
			assert.Nil(t, updated.CompletedAt)
			continue
		}
		require.NotNil(t, updated.CompletedAt)
		assert.Equal(t, *firstDone, *updated.CompletedAt)
	}
}

func TestTaskStore_Update_OtherFieldsKeepCompletedAt(t *testing.T) {
	store, clock := newTaskStore(t)
	task := store.Add(domain.TaskInput{Title: "a"})
	store.Update(task.ID, domain.TaskPatch{Status: statusPtr(domain.StatusDone)})
	clock.Advance(time.Hour)

	title := "renamed"
	updated, _ := store.Update(task.ID, domain.TaskPatch{Title: &title, Status: statusPtr(domain.StatusDone)})

	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, t0, *updated.CompletedAt)
	assert.Equal(t, "renamed", updated.Title)
}

func TestTaskStore_DeleteIdempotent(t *testing.T) {
	store, _ := newTaskStore(t)
	a := store.Add(domain.TaskInput{Title: "a"})
	store.Add(domain.TaskInput{Title: "b"})

	store.Delete(a.ID)
	once := store.List()
	store.Delete(a.ID)

	assert.Equal(t, once, store.List())
	assert.Len(t, once, 1)
}

func TestTaskStore_ByStatus_PreservesOrder(t *testing.T) {
	store, _ := newTaskStore(t)
	store.Add(domain.TaskInput{Title: "a"})
	store.Add(domain.TaskInput{Title: "b", Status: domain.StatusDone})
	store.Add(domain.TaskInput{Title: "c"})

	todo := store.ByStatus(domain.StatusTodo)
	require.Len(t, todo, 2)
	assert.Equal(t, "a", todo[0].Title)
	assert.Equal(t, "c", todo[1].Title)
}

func TestTaskStore_Upcoming_StableByDueDate(t *testing.T) {
	store, _ := newTaskStore(t)
	store.Add(domain.TaskInput{Title: "late", DueDate: domain.MustParseDate("2026-03-01")})
	store.Add(domain.TaskInput{Title: "tie-1", DueDate: domain.MustParseDate("2026-02-01")})
	store.Add(domain.TaskInput{Title: "finished", Status: domain.StatusDone, DueDate: domain.MustParseDate("2026-01-01")})
	store.Add(domain.TaskInput{Title: "undated"})
	store.Add(domain.TaskInput{Title: "tie-2", DueDate: domain.MustParseDate("2026-02-01")})
	store.Add(domain.TaskInput{Title: "early", DueDate: domain.MustParseDate("2026-01-15")})

	var titles []string
	for _, task := range store.Upcoming() {
		titles = append(titles, task.Title)
	}
	assert.Equal(t, []string{"early", "tie-1", "tie-2", "late", "undated"}, titles)
}

func TestTaskStore_ReturnsCopies(t *testing.T) {
	store, _ := newTaskStore(t)
	task := store.Add(domain.TaskInput{Title: "a", Status: domain.StatusDone})

	listed := store.List()
	listed[0].Title = "mutated"
	*listed[0].CompletedAt = time.Time{}

	got, ok := store.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, "a", got.Title)
	assert.Equal(t, t0, *got.CompletedAt)
}

func TestTaskStore_Replace(t *testing.T) {
	store, _ := newTaskStore(t)
	store.Add(domain.TaskInput{Title: "a"})

	store.Replace(DemoTasks())

	assert.Len(t, store.List(), 5)
	_, ok := store.Get("demo-task-5")
	assert.True(t, ok)
}

func TestStores_DefaultCollaborators(t *testing.T) {
	tasks := NewTaskStore(nil, nil, nil)
	notes := NewNoteStore(nil, nil, nil)
	log := NewActivityStore(nil, nil, 0)

	task := tasks.Add(domain.TaskInput{Title: "Ship release"})
	note := notes.Add(domain.NoteInput{Title: "Ideas"})
	entry := log.Add(domain.ActivityInput{Action: "Created task", Item: "Ship release"})

	assert.NotEmpty(t, task.ID)
	assert.NotEmpty(t, note.ID)
	assert.NotEmpty(t, entry.ID)
	assert.NotEqual(t, task.ID, note.ID)
}
