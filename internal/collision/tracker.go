// Package collision detects table name hash collisions during model blob
// encoding.
//
// Model blobs identify tables by the xxHash64 of their name. A collision
// between two distinct names cannot be repaired after encoding (the blob
// stores only hashes), so the encoder must reject it up front.
package collision

import (
	"github.com/openvd/vdkit/errs"
)

// Tracker tracks table names and detects hash collisions while a model blob
// is being encoded.
type Tracker struct {
	names map[uint64]string // hash -> name mapping for collision detection
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64]string),
	}
}

// Track records a table name with its hash.
//
// Returns errs.ErrTableIDCollision if the hash was already registered,
// either by a different name (a real xxHash64 collision) or by the same
// name (a duplicate table, which the blob format cannot represent either).
func (t *Tracker) Track(hash uint64, name string) error {
	if _, exists := t.names[hash]; exists {
		return errs.ErrTableIDCollision
	}

	t.names[hash] = name

	return nil
}

// Count returns the number of tracked tables.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Name returns the recorded name for a hash, or "" if unknown.
func (t *Tracker) Name(hash uint64) string {
	return t.names[hash]
}
