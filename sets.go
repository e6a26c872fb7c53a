package itemquery

import (
	"github.com/hupe1980/itemquery/item"
	"github.com/hupe1980/itemquery/match"
	"github.com/hupe1980/itemquery/search"
)

func (e *Engine) setsDescriptor() *search.Descriptor {
	return &search.Descriptor{
		ID:        "sets",
		Tags:      []string{"s", "set"},
		CanSearch: textOnly,
		Evaluate: func(ref item.Ref, _ match.Operator, c search.Capture) bool {
			id, err := item.ParseID(ref)
			if err != nil {
				return false
			}
			return e.idInSet(id, c.(string))
		},
	}
}

// idInSet walks the active set database. text "" or "*" match any set
// name.
func (e *Engine) idInSet(id uint32, text string) bool {
	for _, s := range e.sets.Sets() {
		if text != "" && text != "*" && !match.ContainsAny(text, s.Name) {
			continue
		}
		if s.Contains(id) {
			return true
		}
	}
	return false
}
