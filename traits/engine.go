// SPDX-License-Identifier: MIT
// Package: cablekit/traits
//
// engine.go — deterministic rule expansion and evaluation.
//
// Ordering contract (strict):
//   • RulesFor(entity) is a pure function of the registry entry; the same
//     entity always yields the same ordered sequence:
//       1. radii bundle (if enabled), fixed order:
//          normalized(r_in), normalized(r_ext),
//          finite(r_in), nonneg(r_in), finite(r_ext), nonneg(r_ext),
//          r_in < r_ext
//       2. temperature bundle (if enabled): finite(temperature)
//       3. extra rules verbatim in declared order
//   • Run short-circuits on the first failing rule, so the first violated
//     rule in the declared order is always the one reported.
//
// Fault mapping (per rule class):
//   • Less/LessEq/IsA/Normalized → ErrInvalidArgument
//   • Finite/Nonneg/Positive/IntegerField → ErrNumericDomain
//   • Expr: false → ErrNumericDomain; evaluation error → ErrInvalidArgument

package traits

import "github.com/expr-lang/expr/vm"

// RulesFor expands the entity's trait configuration into its ordered rule
// bundle. The result is cached; callers MUST NOT modify the returned slice.
// Complexity: O(bundle) on first call, O(1) amortized afterwards.
func (g *Registry) RulesFor(entity string) ([]Rule, error) {
	g.mu.RLock()
	if b, ok := g.bundles[entity]; ok {
		g.mu.RUnlock()
		return b, nil
	}
	g.mu.RUnlock()

	e, err := g.Lookup(entity)
	if err != nil {
		return nil, err
	}

	bundle := make([]Rule, 0, 8+len(e.Extra))
	if e.RadiiBundle {
		bundle = append(bundle,
			Normalized(FieldRIn),
			Normalized(FieldRExt),
			Finite(FieldRIn),
			Nonneg(FieldRIn),
			Finite(FieldRExt),
			Nonneg(FieldRExt),
			Less(FieldRIn, FieldRExt),
		)
	}
	if e.TemperatureBundle {
		bundle = append(bundle, Finite(FieldTemperature))
	}
	bundle = append(bundle, e.Extra...)

	g.mu.Lock()
	g.bundles[entity] = bundle
	g.mu.Unlock()
	return bundle, nil
}

// Run evaluates the entity's full rule bundle against a normalized record,
// short-circuiting on the first failure.
// Complexity: O(len(bundle)).
func (g *Registry) Run(entity string, rec Record) error {
	bundle, err := g.RulesFor(entity)
	if err != nil {
		return err
	}
	for _, r := range bundle {
		if err = g.Apply(r, rec, entity); err != nil {
			return err
		}
	}
	return nil
}

// Apply evaluates a single rule against a normalized record, returning nil
// on success or a fault wrapping ErrInvalidArgument / ErrNumericDomain.
// Complexity: O(1) per rule (Expr: cost of the compiled program).
func (g *Registry) Apply(r Rule, rec Record, entity string) error {
	switch r.Op {
	case OpNormalized:
		if _, ok := rec.Scalars[r.Field]; !ok {
			return faultf(ErrInvalidArgument, entity, "field %q was not normalized to a scalar", r.Field)
		}
		return nil

	case OpFinite:
		s, ok := rec.Scalars[r.Field]
		if !ok || !s.IsFinite() {
			return faultf(ErrNumericDomain, entity, "field %q must be finite, got %v", r.Field, s)
		}
		return nil

	case OpNonneg:
		s, ok := rec.Scalars[r.Field]
		if !ok || s.Value() < 0 {
			return faultf(ErrNumericDomain, entity, "field %q must be ≥ 0, got %v", r.Field, s)
		}
		return nil

	case OpPositive:
		s, ok := rec.Scalars[r.Field]
		if !ok || !(s.Value() > 0) {
			return faultf(ErrNumericDomain, entity, "field %q must be > 0, got %v", r.Field, s)
		}
		return nil

	case OpInteger:
		s, ok := rec.Scalars[r.Field]
		if !ok || !s.IsInteger() {
			return faultf(ErrNumericDomain, entity, "field %q must be an integer, got %v", r.Field, s)
		}
		return nil

	case OpLess:
		a, okA := rec.Scalars[r.Field]
		b, okB := rec.Scalars[r.Field2]
		if !okA || !okB || !a.Less(b) {
			return faultf(ErrInvalidArgument, entity, "field %q must be < %q, got %v and %v", r.Field, r.Field2, a, b)
		}
		return nil

	case OpLessEq:
		a, okA := rec.Scalars[r.Field]
		b, okB := rec.Scalars[r.Field2]
		if !okA || !okB || !a.LessEq(b) {
			return faultf(ErrInvalidArgument, entity, "field %q must be ≤ %q, got %v and %v", r.Field, r.Field2, a, b)
		}
		return nil

	case OpIsA:
		pred := g.capability(r.Cap)
		if pred == nil {
			return faultf(ErrInvalidArgument, entity, "capability %q is not registered", r.Cap)
		}
		if !pred(rec.Objects[r.Field]) {
			return faultf(ErrInvalidArgument, entity, "field %q does not satisfy capability %q", r.Field, r.Cap)
		}
		return nil

	case OpExpr:
		ok, err := evalExpr(r.prog, rec)
		if err != nil {
			return faultf(ErrInvalidArgument, entity, "rule %s: %v", r, err)
		}
		if !ok {
			return faultf(ErrNumericDomain, entity, "rule %s violated", r)
		}
		return nil
	}
	return faultf(ErrInvalidArgument, entity, "unknown rule op %d", r.Op)
}

// evalExpr runs a compiled expression against the record's central values.
// Identifiers resolve to float64 centres; capability objects are not
// exposed to expressions.
func evalExpr(prog *vm.Program, rec Record) (bool, error) {
	env := make(map[string]any, len(rec.Scalars))
	for name, s := range rec.Scalars {
		env[name] = s.Value()
	}
	out, err := vm.Run(prog, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, nil
	}
	return b, nil
}
