// Package memory holds the in-process entity stores backing the dashboard.
package memory

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/idgen"
	"github.com/fastygo/dashboard/repository"
)

// TaskStore keeps tasks in insertion order.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	clock  domain.Clock
	ids    domain.IDGenerator
	logger *zap.Logger
}

func NewTaskStore(clock domain.Clock, ids domain.IDGenerator, logger *zap.Logger) *TaskStore {
	if clock == nil {
		clock = domain.RealClock{}
	}
	if ids == nil {
		ids = idgen.UUID{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskStore{clock: clock, ids: ids, logger: logger}
}

// Add appends a task. A task created directly in done is stamped completed.
func (s *TaskStore) Add(input domain.TaskInput) domain.Task {
	now := s.clock.Now()
	task := domain.Task{
		ID:          s.ids.NewID(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedAt:   now,
	}
	if task.Status == "" {
		task.Status = domain.StatusTodo
	}
	if task.Status == domain.StatusDone {
		task.CompletedAt = &now
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	s.logger.Debug("task added", zap.String("task_id", task.ID), zap.String("status", string(task.Status)))
	return cloneTask(task)
}

// Update merges patch into the task. The first move into done stamps CompletedAt;
// later moves never overwrite it.
func (s *TaskStore) Update(id string, patch domain.TaskPatch) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	task := s.tasks[i]
	patch.Apply(&task)
	if patch.Status != nil && *patch.Status == domain.StatusDone && task.CompletedAt == nil {
		now := s.clock.Now()
		task.CompletedAt = &now
	}
	s.tasks[i] = task

	s.logger.Debug("task updated", zap.String("task_id", id), zap.String("status", string(task.Status)))
	return cloneTask(task), true
}

func (s *TaskStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = slices.DeleteFunc(s.tasks, func(t domain.Task) bool { return t.ID == id })
}

func (s *TaskStore) Get(id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return cloneTask(s.tasks[i]), true
	}
	return domain.Task{}, false
}

func (s *TaskStore) List() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTasks(s.tasks)
}

// ByStatus filters in insertion order.
func (s *TaskStore) ByStatus(status domain.Status) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Status == status {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

// Upcoming returns open tasks by ascending due date. Equal dates keep insertion
// order; tasks without a due date come last.
func (s *TaskStore) Upcoming() []domain.Task {
	s.mu.RLock()
	open := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Status != domain.StatusDone {
			open = append(open, cloneTask(t))
		}
	}
	s.mu.RUnlock()

	slices.SortStableFunc(open, func(a, b domain.Task) int {
		return compareDue(a.DueDate, b.DueDate)
	})
	return open
}

// Replace swaps the whole collection, used when restoring a saved workspace.
func (s *TaskStore) Replace(tasks []domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = cloneTasks(tasks)
}

func (s *TaskStore) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool { return t.ID == id })
}

func compareDue(a, b domain.Date) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	default:
		return a.Compare(b)
	}
}

func cloneTask(t domain.Task) domain.Task {
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		t.CompletedAt = &at
	}
	return t
}

func cloneTasks(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	for i, t := range tasks {
		out[i] = cloneTask(t)
	}
	return out
}

var _ repository.TaskRepository = (*TaskStore)(nil)
