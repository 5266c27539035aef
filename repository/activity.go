package repository

import "github.com/fastygo/dashboard/domain"

// ActivityRepository is the capped, newest-first activity log.
type ActivityRepository interface {
	Add(input domain.ActivityInput) domain.Activity
	List() []domain.Activity
	Recent(limit int) []domain.Activity
	Replace(entries []domain.Activity)
}
