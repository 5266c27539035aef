// Package idgen provides identifier generators for the entity stores.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// UUID issues random v4 UUID strings.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Sequence issues predictable ids ("<prefix>1", "<prefix>2", ...). Safe for concurrent use.
type Sequence struct {
	prefix string
	next   atomic.Int64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s%d", s.prefix, s.next.Add(1))
}
