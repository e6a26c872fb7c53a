// Package cache provides the process-lifetime result cache used by
// tooltip-scanning predicates.
//
// Tooltip scans are the one expensive lookup in the engine, and their
// results are stable for a session, so entries are computed once per
// (fragment, item) pair and never evicted.
package cache
