// Package collision detects parameter-name ID collisions.
package collision

import (
	"fmt"

	"github.com/arloliu/fitparam/errs"
)

// Tracker maps parameter IDs back to names and remembers IDs shared by more
// than one name. Those IDs cannot be resolved and report errs.ErrHashCollision.
type Tracker struct {
	names    map[uint64]string
	collided map[uint64]struct{}
}

// NewTracker creates a tracker sized for capacity names.
func NewTracker(capacity int) *Tracker {
	return &Tracker{
		names:    make(map[uint64]string, capacity),
		collided: make(map[uint64]struct{}),
	}
}

// Track records name under id. It returns false when id is already held by a
// different name; tracking the same name twice is a no-op.
func (t *Tracker) Track(name string, id uint64) bool {
	existing, ok := t.names[id]
	if !ok {
		t.names[id] = name
		return true
	}
	if existing == name {
		return true
	}
	t.collided[id] = struct{}{}

	return false
}

// Name resolves id to the tracked name.
// It returns ok == false for unknown IDs and errs.ErrHashCollision for IDs
// shared by several names.
func (t *Tracker) Name(id uint64) (name string, ok bool, err error) {
	if _, bad := t.collided[id]; bad {
		return "", false, fmt.Errorf("%w: id %#x", errs.ErrHashCollision, id)
	}
	name, ok = t.names[id]

	return name, ok, nil
}

// HasCollision reports whether any ID is shared by several names.
func (t *Tracker) HasCollision() bool {
	return len(t.collided) > 0
}

// Count returns the number of distinct IDs tracked.
func (t *Tracker) Count() int {
	return len(t.names)
}
