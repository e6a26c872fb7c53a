package search

import (
	"strings"

	"github.com/hupe1980/itemquery/item"
)

// Match evaluates the full query grammar against one item: '|' unions
// groups, '&' intersects atoms within a group, '!' or '~' negates a
// single atom.
//
// Empty fragments are skipped at every level: a blank group
// contributes nothing to the union, and a group whose atoms are all
// blank is vacuously true. A query with no usable groups at all
// matches nothing; callers that want the vacuous-match convention for
// a fully empty query handle that before calling here (the engine's
// Matches entry point does).
func (r *Registry) Match(ref item.Ref, query string) bool {
	for _, group := range strings.Split(query, "|") {
		if strings.TrimSpace(group) == "" {
			continue
		}
		if r.intersect(ref, group) {
			return true
		}
	}
	return false
}

func (r *Registry) intersect(ref item.Ref, group string) bool {
	for _, atom := range strings.Split(group, "&") {
		atom = strings.TrimSpace(atom)
		if atom == "" {
			continue
		}
		if !r.negatable(ref, atom) {
			return false
		}
	}
	return true
}

// negatable applies the single consistent default policy: an atom the
// dispatcher cannot interpret counts as a match, and negation inverts
// that like any other result.
func (r *Registry) negatable(ref item.Ref, atom string) bool {
	if atom[0] == '!' || atom[0] == '~' {
		return !r.Dispatch(ref, strings.TrimSpace(atom[1:]), true)
	}
	return r.Dispatch(ref, atom, true)
}
