// Package notify keeps the toast notifications shown by the dashboard.
package notify

import (
	"slices"
	"sync"
	"time"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/idgen"
	"github.com/fastygo/dashboard/usecase"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindDefault Kind = "default"
)

// DefaultDuration is how long a toast stays visible.
const DefaultDuration = 2 * time.Second

// Toast is a transient notification.
type Toast struct {
	ID        string        `json:"id"`
	Kind      Kind          `json:"type"`
	Message   string        `json:"message"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (t Toast) expired(now time.Time) bool {
	return !now.Before(t.CreatedAt.Add(t.Duration))
}

// Center queues toasts until they expire or are dismissed.
type Center struct {
	mu       sync.Mutex
	toasts   []Toast
	clock    domain.Clock
	ids      domain.IDGenerator
	duration time.Duration
}

func NewCenter(clock domain.Clock, ids domain.IDGenerator, duration time.Duration) *Center {
	if clock == nil {
		clock = domain.RealClock{}
	}
	if ids == nil {
		ids = idgen.UUID{}
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Center{clock: clock, ids: ids, duration: duration}
}

func (c *Center) Success(message string) { c.push(KindSuccess, message) }
func (c *Center) Error(message string)   { c.push(KindError, message) }
func (c *Center) Warning(message string) { c.push(KindWarning, message) }
func (c *Center) Message(message string) { c.push(KindDefault, message) }

// Active returns unexpired toasts, oldest first, and forgets the expired ones.
func (c *Center) Active() []Toast {
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toasts = slices.DeleteFunc(c.toasts, func(t Toast) bool { return t.expired(now) })
	return slices.Clone(c.toasts)
}

// Dismiss removes a toast; unknown ids are ignored.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toasts = slices.DeleteFunc(c.toasts, func(t Toast) bool { return t.ID == id })
}

func (c *Center) push(kind Kind, message string) {
	toast := Toast{
		ID:        c.ids.NewID(),
		Kind:      kind,
		Message:   message,
		Duration:  c.duration,
		CreatedAt: c.clock.Now(),
	}
	c.mu.Lock()
	c.toasts = append(c.toasts, toast)
	c.mu.Unlock()
}

var _ usecase.Notifier = (*Center)(nil)
