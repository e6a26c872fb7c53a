// Package search implements the query grammar and the predicate-dispatch
// core of itemquery.
//
// A query is a boolean expression over atoms:
//
//	search    := union
//	union     := intersect ( '|' intersect )*
//	intersect := negatable ( '&' negatable )*
//	negatable := ('!'|'~') atom | atom
//	atom      := [tag ':'] [operator] text
//
// Precedence, high to low: negation, implicit AND within a group, OR
// across groups. Empty fragments are skipped at every level.
//
// Atoms are routed through a Registry of predicate Descriptors. An
// explicit tag ("q:rare", "lvl>=80") resolves directly to the predicate
// owning a matching tag alias; an untagged atom probes every eligible
// predicate in registration order until one claims and matches it.
//
// Malformed input never errors: atoms the dispatcher cannot interpret
// degrade to a caller-chosen boolean default.
package search
