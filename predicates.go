package itemquery

import (
	"strconv"
	"strings"

	"github.com/hupe1980/itemquery/item"
	"github.com/hupe1980/itemquery/match"
	"github.com/hupe1980/itemquery/search"
)

// textOnly is the CanSearch shape shared by the plain containment
// predicates: no operator, non-empty text, text is the capture.
func textOnly(op match.Operator, text string) (search.Capture, bool) {
	if op != match.OpNone || text == "" {
		return nil, false
	}
	return text, true
}

func (e *Engine) nameDescriptor() *search.Descriptor {
	return &search.Descriptor{
		ID:        "name",
		Tags:      []string{"n", "name"},
		CanSearch: textOnly,
		Evaluate: func(ref item.Ref, _ match.Operator, c search.Capture) bool {
			info, ok := e.info.Describe(ref)
			if !ok {
				return false
			}
			return match.ContainsAny(c.(string), info.Name)
		},
	}
}

func (e *Engine) typeDescriptor() *search.Descriptor {
	return &search.Descriptor{
		ID:        "type",
		Tags:      []string{"t", "type", "slot"},
		CanSearch: textOnly,
		Evaluate: func(ref item.Ref, _ match.Operator, c search.Capture) bool {
			info, ok := e.info.Describe(ref)
			if !ok {
				return false
			}
			return match.ContainsAny(c.(string), info.Type, info.SubType, info.EquipSlot)
		},
	}
}

func (e *Engine) qualityDescriptor() *search.Descriptor {
	return &search.Descriptor{
		ID:   "quality",
		Tags: []string{"q", "quality"},
		CanSearch: func(_ match.Operator, text string) (search.Capture, bool) {
			// A tier label wins over a number, so "q:3" on a scale that
			// happened to contain "3" would still mean the label.
			for i, label := range e.scale {
				if strings.Contains(strings.ToLower(label), text) {
					return float64(i), true
				}
			}
			if n, err := strconv.ParseFloat(text, 64); err == nil {
				return n, true
			}
			return nil, false
		},
		Evaluate: func(ref item.Ref, op match.Operator, c search.Capture) bool {
			info, ok := e.info.Describe(ref)
			if !ok || info.Quality < 0 {
				return false
			}
			return match.Compare(op, float64(info.Quality), c.(float64))
		},
	}
}

func (e *Engine) levelDescriptor() *search.Descriptor {
	return &search.Descriptor{
		ID:   "level",
		Tags: []string{"l", "level", "lvl", "ilvl"},
		CanSearch: func(_ match.Operator, text string) (search.Capture, bool) {
			n, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, false
			}
			return n, true
		},
		Evaluate: func(ref item.Ref, op match.Operator, c search.Capture) bool {
			info, ok := e.info.Describe(ref)
			if !ok || info.Level < 0 {
				return false
			}
			return match.Compare(op, float64(info.Level), c.(float64))
		},
	}
}

func (e *Engine) tooltipDescriptor() *search.Descriptor {
	return &search.Descriptor{
		ID:   "tooltip",
		Tags: []string{"tt", "tip", "tooltip"},
		// A full tooltip scan is too broad and too slow for untagged
		// probing; it answers only when asked for by tag.
		OnlyViaTag: true,
		CanSearch: func(_ match.Operator, text string) (search.Capture, bool) {
			if text == "" {
				return nil, false
			}
			return text, true
		},
		Evaluate: func(ref item.Ref, _ match.Operator, c search.Capture) bool {
			return match.ContainsAny(c.(string), e.tooltip.Lines(ref)...)
		},
	}
}
