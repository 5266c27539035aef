// Package kanban turns board gestures into task mutations and activity entries.
package kanban

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/logger"
	"github.com/fastygo/dashboard/repository"
	"github.com/fastygo/dashboard/usecase"
)

// PriorityAll disables the priority filter.
const PriorityAll = "all"

type UseCase struct {
	tasks    repository.TaskRepository
	activity repository.ActivityRepository
	notifier usecase.Notifier
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, activity repository.ActivityRepository, notifier usecase.Notifier, logger *zap.Logger) *UseCase {
	if notifier == nil {
		notifier = usecase.NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		activity: activity,
		notifier: notifier,
		logger:   logger,
	}
}

// DropResult describes what a drop did. Moved is false for stale or same-column drops.
type DropResult struct {
	Moved  bool         `json:"moved"`
	Task   *domain.Task `json:"task,omitempty"`
	Column string       `json:"column,omitempty"`
}

// HandleDrop moves a task to the target column and records the move.
//
// The task update and the activity entry are two independent store writes; an
// interruption between them can leave a moved task without its log line.
func (uc *UseCase) HandleDrop(ctx context.Context, taskID string, target domain.Status) (DropResult, error) {
	if !target.IsValid() {
		return DropResult{}, domain.ErrUnknownColumn
	}
	log := logger.WithRequestID(ctx, uc.logger)

	task, ok := uc.tasks.Get(taskID)
	if !ok {
		log.Debug("drop ignored, task no longer exists", zap.String("task_id", taskID))
		return DropResult{}, nil
	}
	if task.Status == target {
		return DropResult{Task: &task}, nil
	}

	updated, ok := uc.tasks.Update(taskID, domain.TaskPatch{Status: &target})
	if !ok {
		return DropResult{}, nil
	}

	entry := domain.ActivityInput{
		Action: "Moved task",
		Item:   task.Title,
		Type:   domain.ActivityTaskStarted,
	}
	if target == domain.StatusDone {
		entry.Action = "Completed task"
		entry.Type = domain.ActivityTaskCompleted
	}
	uc.activity.Add(entry)

	column := target.Display()
	uc.notifier.Success("Task moved to " + column)
	log.Info("task moved",
		zap.String("task_id", taskID),
		zap.String("from", string(task.Status)),
		zap.String("to", string(target)))

	return DropResult{Moved: true, Task: &updated, Column: column}, nil
}

// CreateTask saves a new task from the board form. Field validation happens before this call.
func (uc *UseCase) CreateTask(ctx context.Context, input domain.TaskInput) domain.Task {
	task := uc.tasks.Add(input)
	uc.activity.Add(domain.ActivityInput{Action: "Created task", Item: input.Title, Type: domain.ActivityTaskStarted})
	uc.notifier.Success("Task created!")
	logger.WithRequestID(ctx, uc.logger).Info("task created", zap.String("task_id", task.ID))
	return task
}

// UpdateTask overwrites the form fields of an existing task. A missing id is a no-op.
func (uc *UseCase) UpdateTask(ctx context.Context, id string, input domain.TaskInput) (domain.Task, bool) {
	task, ok := uc.tasks.Update(id, domain.PatchFromInput(input))
	if !ok {
		return domain.Task{}, false
	}
	uc.activity.Add(domain.ActivityInput{Action: "Updated task", Item: input.Title, Type: domain.ActivityTaskStarted})
	uc.notifier.Success("Task updated!")
	logger.WithRequestID(ctx, uc.logger).Info("task updated", zap.String("task_id", id))
	return task, true
}

// DeleteTask removes a task and logs it. Deleting a missing id does nothing.
func (uc *UseCase) DeleteTask(ctx context.Context, id string) bool {
	task, ok := uc.tasks.Get(id)
	if !ok {
		return false
	}
	uc.tasks.Delete(id)
	uc.activity.Add(domain.ActivityInput{Action: "Deleted task", Item: task.Title, Type: domain.ActivityTaskStarted})
	uc.notifier.Success("Task deleted")
	logger.WithRequestID(ctx, uc.logger).Info("task deleted", zap.String("task_id", id))
	return true
}

func (uc *UseCase) GetTask(_ context.Context, id string) (domain.Task, bool) {
	return uc.tasks.Get(id)
}

// BoardFilter narrows the visible cards.
type BoardFilter struct {
	Query    string `json:"query"`
	Priority string `json:"priority"`
}

func (f BoardFilter) matches(t domain.Task) bool {
	if f.Priority != "" && f.Priority != PriorityAll && string(t.Priority) != f.Priority {
		return false
	}
	return containsFold(t.Title, f.Query)
}

type Column struct {
	ID    domain.Status `json:"id"`
	Title string        `json:"title"`
	Tasks []domain.Task `json:"tasks"`
}

type Board struct {
	Columns []Column `json:"columns"`
}

// Board groups the filtered tasks into columns, keeping collection order inside each column.
func (uc *UseCase) Board(_ context.Context, filter BoardFilter) Board {
	statuses := domain.AllStatuses()
	columns := make([]Column, len(statuses))
	index := make(map[domain.Status]int, len(statuses))
	for i, s := range statuses {
		columns[i] = Column{ID: s, Title: s.Display(), Tasks: []domain.Task{}}
		index[s] = i
	}

	for _, t := range uc.tasks.List() {
		if !filter.matches(t) {
			continue
		}
		if i, ok := index[t.Status]; ok {
			columns[i].Tasks = append(columns[i].Tasks, t)
		}
	}
	return Board{Columns: columns}
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
