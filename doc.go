// Package itemquery implements an embedded boolean search-query engine
// for item records.
//
// Given a free-text query and an opaque item reference, the engine
// decides whether the item matches. Queries combine atoms with '|'
// (OR), '&' (AND) and a leading '!' or '~' (NOT):
//
//	sword | axe            either word
//	blade & q>=rare        both conditions
//	!boe                   not bind-on-equip
//
// An atom optionally names the predicate that should handle it with a
// tag prefix, and may carry a relational operator:
//
//	n:blade      name contains "blade"
//	t:sword      type/slot contains "sword"
//	q:epic       quality tier is "epic"    (q>=3, q<epic, ... also work)
//	lvl>=80      item level at least 80
//	tt:unique    any tooltip line contains "unique" (tag required)
//	s:tank       member of a set whose name contains "tank"
//	boe          bind keyword (soulbound, bound, boe, bop, bou, quest, boa)
//
// Untagged atoms probe every eligible predicate; a tag is matched by
// prefix, so "qual:epic" works too. Malformed fragments never error —
// they degrade to a boolean default. The empty query matches everything.
//
// # Quick Start
//
//	eng, _ := itemquery.New(
//	    itemquery.WithItemInfo(infoProvider),
//	    itemquery.WithTooltip(tooltipProvider),
//	    itemquery.WithSetProvider(setdb.NewStatic(sets)),
//	)
//	if eng.Matches(ref, "sword&q>=rare") {
//	    ...
//	}
//
// # Extension
//
// New predicates register at startup without touching the dispatcher:
//
//	eng.Register(&search.Descriptor{
//	    ID:   "vendor",
//	    Tags: []string{"v", "vendor"},
//	    CanSearch: func(op match.Operator, text string) (search.Capture, bool) { ... },
//	    Evaluate:  func(ref item.Ref, op match.Operator, c search.Capture) bool { ... },
//	})
//
// # Collaborators
//
// The engine consumes three interfaces: item.InfoProvider (display
// info), item.TooltipProvider (descriptive text lines) and
// setdb.Provider (named item-id sets). The setdb package ships an
// in-memory backend, a compressed snapshot-file backend, and S3,
// DynamoDB and MinIO backends in subpackages; exactly one is injected
// per deployment.
package itemquery
