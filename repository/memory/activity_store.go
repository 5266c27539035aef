package memory

import (
	"slices"
	"sync"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/idgen"
	"github.com/fastygo/dashboard/repository"
)

// DefaultActivityLimit is how many entries the log retains.
const DefaultActivityLimit = 50

// ActivityStore is a newest-first log capped at a fixed size. Entries past the
// cap are discarded.
type ActivityStore struct {
	mu      sync.RWMutex
	entries []domain.Activity
	limit   int
	clock   domain.Clock
	ids     domain.IDGenerator
}

func NewActivityStore(clock domain.Clock, ids domain.IDGenerator, limit int) *ActivityStore {
	if clock == nil {
		clock = domain.RealClock{}
	}
	if ids == nil {
		ids = idgen.UUID{}
	}
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	return &ActivityStore{clock: clock, ids: ids, limit: limit}
}

func (s *ActivityStore) Add(input domain.ActivityInput) domain.Activity {
	entry := domain.Activity{
		ID:        s.ids.NewID(),
		Action:    input.Action,
		Item:      input.Item,
		Type:      input.Type,
		Timestamp: s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = truncate(slices.Insert(s.entries, 0, entry), s.limit)
	return entry
}

// List returns entries in insertion order, newest first.
func (s *ActivityStore) List() []domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// Recent re-sorts by descending timestamp so backdated entries land in place.
func (s *ActivityStore) Recent(limit int) []domain.Activity {
	entries := s.List()
	slices.SortStableFunc(entries, func(a, b domain.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return truncate(entries, limit)
}

func (s *ActivityStore) Replace(entries []domain.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = truncate(slices.Clone(entries), s.limit)
}

var _ repository.ActivityRepository = (*ActivityStore)(nil)
