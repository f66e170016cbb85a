package headerindex

import (
	"fmt"

	"github.com/alembic-ogawa/ogawadecode/internal/collision"
	"github.com/alembic-ogawa/ogawadecode/internal/hash"
)

// Index resolves a child name to its position in the header list it was
// built from. Lookup is by hash in the common (collision-free) case; if two
// sibling names hash to the same id, Index falls back to an explicit name
// map built at construction time, the same two-tier strategy the teacher
// uses for its own metric-name index.
type Index struct {
	byID   map[uint64]int
	byName map[string]int // nil unless a hash collision was detected
	count  int
}

// Build constructs an Index over names, where names[i] is the i'th header's
// name (names must be the same length as, and in the same order as, the
// decoded header slice it indexes). Returns an error if a name is empty or
// if two headers at different positions share a name.
func Build(names []string) (Index, error) {
	tracker := collision.NewTracker()
	byID := make(map[uint64]int, len(names))

	for i, name := range names {
		id := hash.ID(name)
		if err := tracker.Track(name, id); err != nil {
			return Index{}, fmt.Errorf("header index entry %d (%q): %w", i, name, err)
		}
		byID[id] = i
	}

	idx := Index{byID: byID, count: len(names)}
	if tracker.HasCollision() {
		idx.byName = make(map[string]int, len(names))
		for i, name := range names {
			idx.byName[name] = i
		}
	}
	return idx, nil
}

// ByName returns the slice index of the header named name, or (0, false) if
// no header has that name.
func (idx Index) ByName(name string) (int, bool) {
	if idx.byName != nil {
		i, ok := idx.byName[name]
		return i, ok
	}
	i, ok := idx.byID[hash.ID(name)]
	return i, ok
}

// Len returns the number of entries in the index.
func (idx Index) Len() int {
	return idx.count
}
