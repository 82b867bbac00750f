// SPDX-License-Identifier: MIT
// Package: cablekit/traits
//
// registry.go — per-entity declarative configuration and the explicit
// registration table.
//
// Design contract (strict):
//   • One Entry per entity type, populated once at startup by Register;
//     no runtime mutation, no implicit global dispatch table.
//   • requiredFields and optionalFieldsWithDefaults are disjoint; order is
//     significant: it defines the positional constructor surface.
//   • Register PANICS on malformed entries (registration-time programmer
//     error); runtime lookups return ErrUnknownEntity instead.

package traits

import (
	"fmt"
	"sync"

	"github.com/voltlab/cablekit/num"
)

// Canonical field names shared by the radii and temperature bundles.
const (
	// FieldRIn is the inner radius of an annular part.
	FieldRIn = "r_in"
	// FieldRExt is the outer radius of an annular part.
	FieldRExt = "r_ext"
	// FieldTemperature is the part's operating temperature.
	FieldTemperature = "temperature"
)

// Record is the normalized record produced by parse and consumed by the
// rule engine and the numeric core constructors: every scalar entry carries
// one resolved kind; capability-bearing arguments (materials) ride along in
// Objects so IsA rules can inspect them.
type Record struct {
	Scalars map[string]num.Scalar
	Objects map[string]any
}

// NewRecord returns an empty normalized record.
func NewRecord() Record {
	return Record{Scalars: make(map[string]num.Scalar), Objects: make(map[string]any)}
}

// Kind resolves the record's numeric representation: Uncertain if any scalar
// or any Kinded object is uncertain, Plain otherwise.
// Complexity: O(len(record)).
func (r Record) Kind() num.Kind {
	for _, s := range r.Scalars {
		if s.NumKind() == num.Uncertain {
			return num.Uncertain
		}
	}
	for _, o := range r.Objects {
		if k, ok := o.(num.Kinded); ok && k.NumKind() == num.Uncertain {
			return num.Uncertain
		}
	}
	return num.Plain
}

// OptionalField is one optional constructor argument with its default raw
// value (the default passes through parse like any supplied value).
type OptionalField struct {
	Name    string
	Default any
}

// ParseFunc converts a sanitized name→raw-value binding into the normalized
// record. This is the only place proxy resolution may occur; rules and the
// numeric core never see proxies.
type ParseFunc func(entity string, bound map[string]any) (Record, error)

// Entry is the declarative trait configuration for one entity type.
type Entry struct {
	// RadiiBundle opts into the standard geometric-radius rule bundle
	// (normalized/finite/nonneg on r_in and r_ext, then r_in < r_ext).
	RadiiBundle bool

	// TemperatureBundle opts into Finite(temperature).
	TemperatureBundle bool

	// Required lists mandatory fields in positional-constructor order.
	Required []string

	// Optional lists optional fields with defaults, in declaration order.
	Optional []OptionalField

	// RadiusFields names the raw arguments that are radius-bearing and thus
	// subject to RadiusAdmissible during sanitation.
	RadiusFields []string

	// RadiusAdmissible decides whether a raw radius value is acceptable for
	// this entity. Nil means DefaultRadiusAdmissible (plain numerics only).
	RadiusAdmissible func(any) bool

	// Extra rules are appended verbatim after the generated bundles.
	Extra []Rule

	// Parse is the entity's proxy-resolving normalization function.
	Parse ParseFunc
}

// DefaultRadiusAdmissible admits plain numeric raw values only: num.Scalar,
// float64 and int. Entities that accept proxy or reference radii register a
// wider predicate explicitly.
func DefaultRadiusAdmissible(v any) bool {
	switch v.(type) {
	case num.Scalar, float64, int:
		return true
	}
	return false
}

// Registry maps entity-type identifiers to their trait entries and holds
// the capability predicates referenced by IsA rules. Build it at startup;
// it is safe for concurrent reads afterwards.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	bundles map[string][]Rule // RulesFor cache, invalidated on Register
	caps    map[string]func(any) bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
		bundles: make(map[string][]Rule),
		caps:    make(map[string]func(any) bool),
	}
}

// Register installs (or wholesale replaces) the entry for an entity type and
// invalidates its cached rule bundle, so duplicate declarations can never
// duplicate rules. Panics on malformed entries:
//   - empty entity name or nil Parse;
//   - Required/Optional overlap (the sets must be disjoint);
//   - a RadiusFields name that is neither required nor optional.
func (g *Registry) Register(entity string, e Entry) {
	if entity == "" {
		panic("traits: Register with empty entity name")
	}
	if e.Parse == nil {
		panic(fmt.Sprintf("traits: Register(%q) with nil Parse", entity))
	}
	known := make(map[string]bool, len(e.Required)+len(e.Optional))
	for _, f := range e.Required {
		known[f] = true
	}
	for _, o := range e.Optional {
		if known[o.Name] {
			panic(fmt.Sprintf("traits: Register(%q): field %q is both required and optional", entity, o.Name))
		}
		known[o.Name] = true
	}
	for _, f := range e.RadiusFields {
		if !known[f] {
			panic(fmt.Sprintf("traits: Register(%q): radius field %q is not declared", entity, f))
		}
	}
	if e.RadiusAdmissible == nil {
		e.RadiusAdmissible = DefaultRadiusAdmissible
	}

	g.mu.Lock()
	g.entries[entity] = e
	delete(g.bundles, entity)
	g.mu.Unlock()
}

// RegisterCapability binds the predicate for a named capability used by IsA
// rules. Panics on nil predicate or empty name.
func (g *Registry) RegisterCapability(name string, pred func(any) bool) {
	if name == "" || pred == nil {
		panic("traits: RegisterCapability with empty name or nil predicate")
	}
	g.mu.Lock()
	g.caps[name] = pred
	g.mu.Unlock()
}

// Lookup returns the entry for an entity type, or ErrUnknownEntity.
func (g *Registry) Lookup(entity string) (Entry, error) {
	g.mu.RLock()
	e, ok := g.entries[entity]
	g.mu.RUnlock()
	if !ok {
		return Entry{}, faultf(ErrUnknownEntity, entity, "entity type is not registered")
	}
	return e, nil
}

// Entities lists registered entity names (unordered; for introspection).
func (g *Registry) Entities() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.entries))
	for n := range g.entries {
		out = append(out, n)
	}
	return out
}

// capability fetches a registered predicate (nil if absent).
func (g *Registry) capability(name string) func(any) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.caps[name]
}
