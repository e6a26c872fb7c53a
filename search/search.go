package search

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hupe1980/itemquery/item"
	"github.com/hupe1980/itemquery/match"
)

// Capture is an opaque value produced by a predicate's CanSearch step
// and handed back verbatim to its Evaluate step. Its shape is private
// to each predicate.
type Capture any

// Descriptor is a registered predicate: a capability probe plus an
// evaluation function, optionally reachable through tag aliases.
type Descriptor struct {
	// ID uniquely identifies the predicate within a registry.
	ID string

	// Tags lists the aliases an explicit "tag:" prefix resolves to. A
	// user tag matches when it is a prefix of an alias, so "qual:" finds
	// a predicate tagged "quality".
	Tags []string

	// OnlyViaTag excludes the predicate from untagged probing. Set it on
	// expensive predicates (full tooltip scans) that should only run when
	// asked for by name.
	OnlyViaTag bool

	// CanSearch validates operator and text and returns the parsed
	// capture. ok=false means the predicate does not claim the atom.
	CanSearch func(op match.Operator, text string) (Capture, bool)

	// Evaluate applies a previously captured atom to an item.
	Evaluate func(ref item.Ref, op match.Operator, c Capture) bool
}

// ErrInvalidDescriptor reports a descriptor that cannot be registered.
type ErrInvalidDescriptor struct {
	ID     string
	Reason string
}

func (e *ErrInvalidDescriptor) Error() string {
	return fmt.Sprintf("invalid predicate descriptor %q: %s", e.ID, e.Reason)
}

func (d *Descriptor) validate() error {
	if d == nil {
		return &ErrInvalidDescriptor{Reason: "nil descriptor"}
	}
	if d.ID == "" {
		return &ErrInvalidDescriptor{Reason: "empty id"}
	}
	if d.CanSearch == nil {
		return &ErrInvalidDescriptor{ID: d.ID, Reason: "nil CanSearch"}
	}
	if d.Evaluate == nil {
		return &ErrInvalidDescriptor{ID: d.ID, Reason: "nil Evaluate"}
	}
	return nil
}

// Registry holds the registered predicates in insertion order.
// Registration is expected to happen once at startup; lookups take a
// read lock so a late Register stays safe anyway.
type Registry struct {
	mu    sync.RWMutex
	order []*Descriptor
	byID  map[string]*Descriptor
}

// NewRegistry creates an empty predicate registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[string]*Descriptor),
	}
}

// Register stores d under its ID. Registering an ID a second time
// replaces the prior descriptor in place, keeping its position: last
// registration wins, which lets a newer engine redefine a base
// predicate without reshuffling probe order.
func (r *Registry) Register(d *Descriptor) error {
	if err := d.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.byID[d.ID]; ok {
		for i, e := range r.order {
			if e == prev {
				r.order[i] = d
				break
			}
		}
	} else {
		r.order = append(r.order, d)
	}
	r.byID[d.ID] = d

	return nil
}

// List returns the registered descriptors in registration order.
func (r *Registry) List() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Get returns the descriptor registered under id.
func (r *Registry) Get(id string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	return d, ok
}

// byTag returns the first registered descriptor owning a tag alias the
// user tag is a prefix of.
func (r *Registry) byTag(tag string) (*Descriptor, bool) {
	for _, d := range r.List() {
		for _, alias := range d.Tags {
			if strings.HasPrefix(alias, tag) {
				return d, true
			}
		}
	}
	return nil, false
}
