// Package testutil provides deterministic collaborator fakes for engine
// tests: a fixture that serves item info and tooltip lines from a fixed
// table, with call counters so tests can assert on caching behavior.
package testutil
