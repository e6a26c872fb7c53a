package itemquery

import (
	"strings"

	"github.com/hupe1980/itemquery/internal/cache"
	"github.com/hupe1980/itemquery/item"
	"github.com/hupe1980/itemquery/search"
	"github.com/hupe1980/itemquery/setdb"
)

// DefaultQualityScale is the ordered quality-tier label list used when
// no override is supplied. Comparisons operate on the index, not the
// label.
var DefaultQualityScale = []string{
	"poor",
	"common",
	"uncommon",
	"rare",
	"epic",
	"legendary",
	"artifact",
	"heirloom",
}

// Engine evaluates search queries against items. It is safe for
// concurrent use once constructed; predicate registration is intended
// for startup time.
type Engine struct {
	registry *search.Registry
	info     item.InfoProvider
	tooltip  item.TooltipProvider
	sets     setdb.Provider
	scale    []string
	logger   *Logger

	bindCache *cache.BoolCache
}

// New creates an engine with the builtin predicates registered.
// An item info provider and a tooltip provider are required.
func New(opts ...Option) (*Engine, error) {
	o := options{
		logger:       NoopLogger(),
		sets:         setdb.NewStatic(nil),
		qualityScale: DefaultQualityScale,
	}
	for _, fn := range opts {
		fn(&o)
	}

	if o.info == nil {
		return nil, ErrNoItemInfo
	}
	if o.tooltip == nil {
		return nil, ErrNoTooltip
	}
	if len(o.qualityScale) == 0 {
		return nil, ErrEmptyQualityScale
	}

	e := &Engine{
		registry:  search.NewRegistry(),
		info:      o.info,
		tooltip:   o.tooltip,
		sets:      o.sets,
		scale:     o.qualityScale,
		logger:    o.logger,
		bindCache: cache.NewBoolCache(),
	}

	if err := e.registerBuiltins(); err != nil {
		return nil, err
	}

	return e, nil
}

// Matches reports whether the item satisfies the query. An empty or
// whitespace-only query matches everything; the query is lowercased
// before tokenizing. Malformed queries never error — they degrade to a
// boolean per the grammar's defaults.
func (e *Engine) Matches(ref item.Ref, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	matched := e.registry.Match(ref, q)
	e.logger.LogMatch(q, matched)
	return matched
}

// InSet reports whether an equippable item belongs to a named set
// matching query. An empty query or "*" means any set. Items that are
// not equippable, or whose reference carries no numeric id, never
// match.
func (e *Engine) InSet(ref item.Ref, query string) bool {
	info, ok := e.info.Describe(ref)
	if !ok || !info.Equippable() {
		return false
	}

	id, err := item.ParseID(ref)
	if err != nil {
		return false
	}

	return e.idInSet(id, strings.ToLower(strings.TrimSpace(query)))
}

// Register adds or replaces a predicate. Intended for startup-time use;
// it is safe, but unusual, to call later.
func (e *Engine) Register(d *search.Descriptor) error {
	err := e.registry.Register(d)
	if d != nil {
		e.logger.LogRegister(d.ID, err)
	}
	return err
}

// Predicates returns the registered predicates in registration order.
func (e *Engine) Predicates() []*search.Descriptor {
	return e.registry.List()
}

// Predicate returns the predicate registered under id.
func (e *Engine) Predicate(id string) (*search.Descriptor, bool) {
	return e.registry.Get(id)
}

// CacheStats returns tooltip-scan cache hits and misses.
func (e *Engine) CacheStats() (hits, misses int64) {
	return e.bindCache.Stats()
}

// registerBuiltins installs the base predicates. Registration order is
// probe order for untagged atoms and tie-break order for tag prefixes,
// so it is part of the engine's contract.
func (e *Engine) registerBuiltins() error {
	// sets precedes type so the user tag "s" resolves to the set
	// predicate, not to type's "slot" alias.
	for _, d := range []*search.Descriptor{
		e.nameDescriptor(),
		e.setsDescriptor(),
		e.typeDescriptor(),
		e.qualityDescriptor(),
		e.levelDescriptor(),
		e.tooltipDescriptor(),
		e.bindDescriptor(),
	} {
		if err := e.registry.Register(d); err != nil {
			return err
		}
	}
	return nil
}
