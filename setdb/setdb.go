package setdb

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a named collection of item ids.
type Set struct {
	Name  string
	Items *roaring.Bitmap
}

// Contains reports whether the set holds the given item id.
func (s Set) Contains(id uint32) bool {
	return s.Items != nil && s.Items.Contains(id)
}

// Provider enumerates the named sets available to the engine.
// Implementations must be fast and local; Sets is called on every set
// predicate evaluation.
type Provider interface {
	Sets() []Set
}

// Static is a fixed in-memory Provider. It is the zero-dependency
// backend and the default when no other is injected.
type Static struct {
	sets []Set
}

// NewStatic builds a Static provider from a name-to-ids mapping. Sets
// are ordered by name so enumeration is deterministic.
func NewStatic(sets map[string][]uint32) *Static {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Set, 0, len(names))
	for _, name := range names {
		out = append(out, Set{
			Name:  name,
			Items: roaring.BitmapOf(sets[name]...),
		})
	}
	return &Static{sets: out}
}

// Sets returns the configured sets.
func (s *Static) Sets() []Set {
	return s.sets
}
