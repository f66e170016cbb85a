// Package collision tracks name→hash assignments and detects 64-bit hash
// collisions among a set of sibling names, falling back to an explicit name
// list when a collision is found.
package collision

import (
	"github.com/alembic-ogawa/ogawadecode/errs"
)

// Tracker tracks a set of names and their hashes, detecting collisions
// (distinct names sharing a hash) as they're added.
type Tracker struct {
	byHash       map[uint64]string // hash → name, for collision detection
	names        []string          // ordered list of every name accepted by Track
	hasCollision bool
}

// NewTracker creates a new, empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byHash: make(map[uint64]string),
		names:  make([]string, 0),
	}
}

// TrackID tracks a bare hash with no known name. Returns ErrHashCollision if
// the hash was already tracked — without a name there is nothing to fall
// back on, so a repeat is always a fatal collision.
func (t *Tracker) TrackID(hash uint64) error {
	if _, exists := t.byHash[hash]; exists {
		return errs.ErrHashCollision
	}
	t.byHash[hash] = ""
	return nil
}

// Track tracks name and its precomputed hash. A second call with the same
// name is rejected as ErrDuplicateName. A second call with a different name
// but the same hash sets the collision flag rather than erroring — the
// caller can use HasCollision/Names to fall back to an explicit name list.
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrEmptyName
	}

	if existing, exists := t.byHash[hash]; exists {
		if existing == name {
			return errs.ErrDuplicateName
		}
		t.hasCollision = true
	}

	t.byHash[hash] = name
	t.names = append(t.names, name)
	return nil
}

// HasCollision reports whether two distinct names tracked so far share a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the ordered list of names tracked via Track (TrackID calls
// contribute no name).
func (t *Tracker) Names() []string {
	return t.names
}

// Count returns the number of names tracked via Track.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears all tracked state, preserving map capacity for reuse.
func (t *Tracker) Reset() {
	for k := range t.byHash {
		delete(t.byHash, k)
	}
	t.names = t.names[:0]
	t.hasCollision = false
}
