package search

import (
	"github.com/hupe1980/itemquery/item"
)

// Dispatch routes one atom to the predicate that claims it.
//
// fallback is returned for atoms the dispatcher cannot interpret: empty
// text, a tag with nothing after it, or a tag no predicate answers to.
// Untagged atoms resolve exhaustively instead — when no predicate
// claims the text, that is informative and the answer is a definite
// false, never the fallback.
func (r *Registry) Dispatch(ref item.Ref, s string, fallback bool) bool {
	a := ParseAtom(s)
	if a.Text == "" {
		return fallback
	}

	if a.Tag != "" {
		d, ok := r.byTag(a.Tag)
		if !ok {
			return fallback
		}
		return invoke(d, ref, a)
	}

	for _, d := range r.List() {
		if d.OnlyViaTag {
			continue
		}
		if c, ok := d.CanSearch(a.Op, a.Text); ok && d.Evaluate(ref, a.Op, c) {
			return true
		}
	}
	return false
}

// invoke runs one resolved descriptor. A rejected CanSearch means the
// atom simply does not match; it is not an error.
func invoke(d *Descriptor, ref item.Ref, a Atom) bool {
	c, ok := d.CanSearch(a.Op, a.Text)
	if !ok {
		return false
	}
	return d.Evaluate(ref, a.Op, c)
}
