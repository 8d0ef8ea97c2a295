package resource

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator hands out record identifiers. Implementations must never return
// the same id twice.
type IDGenerator interface {
	Next() string
	// Reserve tells the generator that id is taken by a seeded record.
	Reserve(id string)
}

// Sequence produces decimal ids from a monotonic counter starting at 1.
type Sequence struct {
	mu   sync.Mutex
	last int64
}

// NewSequence returns a sequence whose first id is "1".
func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return strconv.FormatInt(s.last, 10)
}

// Reserve advances the counter past numeric ids. Non-numeric ids cannot
// collide with the sequence and are ignored.
func (s *Sequence) Reserve(id string) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > s.last {
		s.last = n
	}
}

// UUIDs produces random version 4 UUIDs.
type UUIDs struct{}

func (UUIDs) Next() string { return uuid.NewString() }

func (UUIDs) Reserve(string) {}
