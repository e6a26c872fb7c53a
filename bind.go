package itemquery

import (
	"github.com/hupe1980/itemquery/internal/cache"
	"github.com/hupe1980/itemquery/item"
	"github.com/hupe1980/itemquery/match"
	"github.com/hupe1980/itemquery/search"
)

// Canonical bind descriptions exactly as they appear on tooltip lines.
const (
	BindSoulbound = "Soulbound"
	BindOnEquip   = "Binds when equipped"
	BindOnPickup  = "Binds when picked up"
	BindOnUse     = "Binds when used"
	BindQuest     = "Quest Item"
	BindAccount   = "Binds to account"
)

// bindKeywords maps the accepted query keywords to the canonical
// tooltip text they stand for. The keyword must match the atom text
// exactly; this predicate never does substring matching, otherwise it
// would shadow name searches during untagged probing.
var bindKeywords = map[string]string{
	"soulbound": BindSoulbound,
	"bound":     BindSoulbound,
	"boe":       BindOnEquip,
	"bop":       BindOnPickup,
	"bou":       BindOnUse,
	"quest":     BindQuest,
	"boa":       BindAccount,
}

func (e *Engine) bindDescriptor() *search.Descriptor {
	return &search.Descriptor{
		ID: "bind",
		CanSearch: func(_ match.Operator, text string) (search.Capture, bool) {
			canonical, ok := bindKeywords[text]
			if !ok {
				return nil, false
			}
			return canonical, true
		},
		Evaluate: func(ref item.Ref, _ match.Operator, c search.Capture) bool {
			canonical := c.(string)

			id, err := item.ParseID(ref)
			if err != nil {
				// No stable cache key; scan directly.
				return e.scanBind(ref, canonical)
			}

			return e.bindCache.GetOrCompute(cache.Key{Fragment: canonical, Item: id}, func() bool {
				return e.scanBind(ref, canonical)
			})
		},
	}
}

// scanBind checks tooltip lines 2 and 3, the only positions bind text
// appears at.
func (e *Engine) scanBind(ref item.Ref, canonical string) bool {
	for n := 2; n <= 3; n++ {
		if line, ok := e.tooltip.Line(ref, n); ok && line == canonical {
			return true
		}
	}
	return false
}
