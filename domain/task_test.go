package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status Status
		valid  bool
	}{
		{StatusTodo, true},
		{StatusInProgress, true},
		{StatusDone, true},
		{Status("in_progress"), false},
		{Status(""), false},
		{Status("Done"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
		})
	}
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "To Do", StatusTodo.Display())
	assert.Equal(t, "In Progress", StatusInProgress.Display())
	assert.Equal(t, "Done", StatusDone.Display())
	assert.Equal(t, "archived", Status("archived").Display())
}

func TestTask_IsOverdue(t *testing.T) {
	today := MustParseDate("2026-01-12")

	open := &Task{Status: StatusTodo, DueDate: MustParseDate("2026-01-11")}
	assert.True(t, open.IsOverdue(today))

	dueToday := &Task{Status: StatusTodo, DueDate: today}
	assert.False(t, dueToday.IsOverdue(today))

	done := &Task{Status: StatusDone, DueDate: MustParseDate("2026-01-01")}
	assert.False(t, done.IsOverdue(today))

	noDate := &Task{Status: StatusInProgress}
	assert.False(t, noDate.IsOverdue(today))
}

func TestTaskPatch_Apply(t *testing.T) {
	task := &Task{Title: "a", Description: "d", Status: StatusTodo, Priority: PriorityLow}
	title := "b"
	status := StatusInProgress

	TaskPatch{Title: &title, Status: &status}.Apply(task)

	assert.Equal(t, "b", task.Title)
	assert.Equal(t, "d", task.Description)
	assert.Equal(t, StatusInProgress, task.Status)
	assert.Equal(t, PriorityLow, task.Priority)
}

func TestPatchFromInput_KeepsStatusWhenOmitted(t *testing.T) {
	patch := PatchFromInput(TaskInput{Title: "x", Priority: PriorityHigh})
	assert.Nil(t, patch.Status)
	require.NotNil(t, patch.Title)
	assert.Equal(t, "x", *patch.Title)
}

func TestDate_JSON(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"id":"1","dueDate":"2026-02-01","createdAt":"2026-01-10T00:00:00Z"}`), &task)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", task.DueDate.String())

	out, err := json.Marshal(task.DueDate)
	require.NoError(t, err)
	assert.JSONEq(t, `"2026-02-01"`, string(out))
}

func TestDate_ParseVariants(t *testing.T) {
	d, err := ParseDate("2026-01-10T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-10", d.String())

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("10/01/2026")
	assert.Error(t, err)
}

func TestNewDate_DropsTimeOfDay(t *testing.T) {
	morning := NewDate(time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC))
	evening := NewDate(time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC))
	assert.True(t, morning.Equal(evening))
	assert.Equal(t, 1, morning.AddDays(1).Compare(evening))
}
