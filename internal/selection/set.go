package selection

import (
	"slices"
)

// Set is a set of selected object IDs.
type Set map[uint32]struct{}

// NewSet returns a set holding ids.
func NewSet(ids ...uint32) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts ids.
func (s Set) Add(ids ...uint32) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Contains reports whether id is selected.
func (s Set) Contains(id uint32) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of selected IDs.
func (s Set) Len() int { return len(s) }

// Clear removes every ID.
func (s Set) Clear() {
	clear(s)
}

// Merge adds every ID of o.
func (s Set) Merge(o Set) {
	for id := range o {
		s[id] = struct{}{}
	}
}

// IDs returns the IDs in ascending order.
func (s Set) IDs() []uint32 {
	ids := make([]uint32, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	out.Merge(s)
	return out
}
