package testutil

import (
	"sync/atomic"

	"github.com/hupe1980/itemquery/item"
)

// Item is a fully described fake item.
type Item struct {
	Ref     item.Ref
	Info    item.Info
	Tooltip []string
}

// Fixture implements item.InfoProvider and item.TooltipProvider over a
// fixed item table. It is safe for concurrent use.
type Fixture struct {
	items map[item.Ref]Item

	describeCalls atomic.Int64
	lineCalls     atomic.Int64
	linesCalls    atomic.Int64
}

// NewFixture creates a fixture serving the given items.
func NewFixture(items ...Item) *Fixture {
	m := make(map[item.Ref]Item, len(items))
	for _, it := range items {
		m[it.Ref] = it
	}
	return &Fixture{items: m}
}

// Describe implements item.InfoProvider.
func (f *Fixture) Describe(ref item.Ref) (item.Info, bool) {
	f.describeCalls.Add(1)

	it, ok := f.items[ref]
	return it.Info, ok
}

// Lines implements item.TooltipProvider.
func (f *Fixture) Lines(ref item.Ref) []string {
	f.linesCalls.Add(1)

	return f.items[ref].Tooltip
}

// Line implements item.TooltipProvider.
func (f *Fixture) Line(ref item.Ref, n int) (string, bool) {
	f.lineCalls.Add(1)

	lines := f.items[ref].Tooltip
	if n < 1 || n > len(lines) {
		return "", false
	}
	return lines[n-1], true
}

// DescribeCalls returns how often Describe was invoked.
func (f *Fixture) DescribeCalls() int64 {
	return f.describeCalls.Load()
}

// LineCalls returns how often Line was invoked. Bind-predicate caching
// tests assert that this stops growing once a result is cached.
func (f *Fixture) LineCalls() int64 {
	return f.lineCalls.Load()
}

// LinesCalls returns how often Lines was invoked.
func (f *Fixture) LinesCalls() int64 {
	return f.linesCalls.Load()
}
