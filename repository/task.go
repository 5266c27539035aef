package repository

import "github.com/fastygo/dashboard/domain"

// TaskRepository owns the task collection. Operations are total: a missing id is a no-op.
type TaskRepository interface {
	Add(input domain.TaskInput) domain.Task
	Update(id string, patch domain.TaskPatch) (domain.Task, bool)
	Delete(id string)
	Get(id string) (domain.Task, bool)
	List() []domain.Task
	ByStatus(status domain.Status) []domain.Task
	Upcoming() []domain.Task
	Replace(tasks []domain.Task)
}
