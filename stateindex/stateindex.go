// Package stateindex interns level.State values behind small integer
// handles, so the search engine's closed set and parent map never have to
// hash or compare a full box-position slice more than once per distinct
// state. This is the arena-allocator design sokoban-solver/SPEC_FULL.md §2.3
// calls for: a map[uint64]... of xxhash digests over State.Key(), each
// bucket holding the (small number of) handles whose key happens to share
// that digest, resolved by a byte-exact compare so a hash collision can
// never silently alias two different states.
package stateindex

import (
	"github.com/cespare/xxhash/v2"

	"github.com/bertbaron/sokoban-solver/level"
)

// Handle is an opaque reference to an interned State. The zero Handle is
// never issued by Index.Intern, so callers may use it as a "not present"
// sentinel.
type Handle int32

// Index interns level.State values and hands out Handles for them.
type Index struct {
	arena   []level.State
	keys    [][]byte
	buckets map[uint64][]Handle
}

// New creates an empty Index.
func New() *Index {
	return &Index{buckets: make(map[uint64][]Handle)}
}

// Intern returns the Handle for s, creating a new one if s hasn't been seen
// before. The returned bool is true if this call created a new entry.
func (idx *Index) Intern(s level.State) (Handle, bool) {
	key := s.Key()
	digest := xxhash.Sum64(key)
	for _, h := range idx.buckets[digest] {
		if bytesEqual(idx.keys[h-1], key) {
			return h, false
		}
	}
	idx.arena = append(idx.arena, s)
	idx.keys = append(idx.keys, key)
	h := Handle(len(idx.arena))
	idx.buckets[digest] = append(idx.buckets[digest], h)
	return h, true
}

// Lookup returns the State a Handle refers to. h must have come from Intern
// on this same Index.
func (idx *Index) Lookup(h Handle) level.State {
	return idx.arena[h-1]
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
