// Package item defines the collaborator surface the query engine
// consumes: opaque item references, display info, and tooltip access.
//
// The engine never interprets a reference's internal structure except to
// extract the numeric id needed for set-membership lookups.
package item

import (
	"errors"
	"strings"
)

// Ref is an opaque item reference. In practice it is an item link string
// such as "|cffa335ee|Hitem:18832:0:0:0|h[Brutality Blade]|h|r", or a
// bare decimal id.
type Ref string

// ErrNoID is returned when a reference carries no extractable numeric id.
var ErrNoID = errors.New("item: reference carries no numeric id")

// ParseID extracts the numeric item id from a reference. It accepts a
// bare decimal id or any string embedding an "item:<id>" payload.
// A simple digit scan, no regex.
func ParseID(ref Ref) (uint32, error) {
	s := string(ref)

	if id, n := leadingDigits(s); n > 0 && n == len(s) {
		return id, nil
	}

	const marker = "item:"
	if i := strings.Index(s, marker); i >= 0 {
		if id, n := leadingDigits(s[i+len(marker):]); n > 0 {
			return id, nil
		}
	}

	return 0, ErrNoID
}

// leadingDigits parses the decimal run at the start of s, returning the
// value and the number of bytes consumed.
func leadingDigits(s string) (uint32, int) {
	var v uint64
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		v = v*10 + uint64(s[n]-'0')
		if v > 1<<32-1 {
			return 0, 0
		}
		n++
	}
	return uint32(v), n
}

// Info describes an item for display-level predicates. Quality is an
// index into the engine's ordered quality scale and Level a plain item
// level; a negative value means the collaborator could not supply the
// field, and predicates that need it report no match instead of failing.
type Info struct {
	Name      string
	Type      string
	SubType   string
	EquipSlot string
	Quality   int
	Level     int
}

// Equippable reports whether the item occupies an equipment slot.
func (i Info) Equippable() bool {
	return i.EquipSlot != ""
}

// InfoProvider resolves display info for an item reference.
// Unknown references must yield ok=false, never a panic.
type InfoProvider interface {
	Describe(ref Ref) (Info, bool)
}

// TooltipProvider exposes an item's descriptive text lines.
type TooltipProvider interface {
	// Lines returns every tooltip line in display order.
	Lines(ref Ref) []string

	// Line returns the n-th tooltip line, 1-based. It exists so callers
	// that only need one or two known lines can skip a full scan.
	Line(ref Ref, n int) (string, bool)
}
