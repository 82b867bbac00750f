// SPDX-License-Identifier: MIT
// Package: cablekit/cable
//
// insulator_group.go — the mutable aggregate of dielectric layers
// (insulators and semiconductive screens), same append discipline as the
// conductor group: validate → resolve → coerce → mutate or promote.

package cable

import (
	"github.com/voltlab/cablekit/formulas"
	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
)

// InsulatorGroup aggregates radially stacked dielectric layers and
// maintains their series-equivalent capacitance and shunt conductance.
//
// Not safe for concurrent mutation; see the package documentation.
type InsulatorGroup struct {
	parts []Part

	rIn         num.Scalar
	rExt        num.Scalar
	capacitance num.Scalar
	conductance num.Scalar

	kind num.Kind
}

var _ num.Kinded = (*InsulatorGroup)(nil)

// NewInsulatorGroup validates and constructs the group's first dielectric
// layer.
func NewInsulatorGroup(entity string, args ...any) (*InsulatorGroup, error) {
	p, err := buildDielectricPart(entity, args, num.Plain)
	if err != nil {
		return nil, err
	}

	return &InsulatorGroup{
		parts:       []Part{p},
		rIn:         p.RIn,
		rExt:        p.RExt,
		capacitance: p.Capacitance,
		conductance: p.Conductance,
		kind:        p.NumKind(),
	}, nil
}

// Add validates a new dielectric layer and appends it under the same
// mutate-or-promote contract as ConductorGroup.Add: callers must always
// use the returned group. The layer must sit exactly on the group's outer
// bound; air gaps are modeled explicitly with an air-filled layer.
func (g *InsulatorGroup) Add(entity string, args ...any) (*InsulatorGroup, error) {
	p, err := buildDielectricPart(entity, args, g.kind)
	if err != nil {
		return nil, err
	}

	if p.RIn.Value() != g.rExt.Value() {
		return nil, faultf(traits.ErrInvalidArgument, entity,
			"inner radius %v must sit exactly on the group's outer bound %v", p.RIn, g.rExt)
	}

	out := g
	if p.NumKind() != g.kind {
		out = g.promote(p.NumKind())
	}

	out.parts = append(out.parts, p)
	out.rExt = p.RExt
	out.capacitance = formulas.SeriesCapacitance(out.capacitance, p.Capacitance)
	out.conductance = formulas.SeriesConductance(out.conductance, p.Conductance)
	return out, nil
}

// buildDielectricPart mirrors buildConductivePart for dielectric classes.
func buildDielectricPart(entity string, args []any, floor num.Kind) (Part, error) {
	class, known := classOf[entity]
	if known && class != ClassInsulator && class != ClassSemicon {
		return Part{}, faultf(traits.ErrInvalidArgument, entity,
			"entity is not a dielectric layer")
	}

	rec, err := validateEntity(entity, args)
	if err != nil {
		return Part{}, err
	}

	kind := num.Join(floor, rec.Kind())
	rec = coerceRecord(rec, kind)
	return newPart(entity, rec, kind), nil
}

// promote returns a deep, type-promoted copy; the receiver stays unmodified.
func (g *InsulatorGroup) promote(k num.Kind) *InsulatorGroup {
	warnPromotion("insulator_group", g.kind, k)
	parts := make([]Part, len(g.parts))
	for i, p := range g.parts {
		parts[i] = p.coerce(k)
	}
	return &InsulatorGroup{
		parts:       parts,
		rIn:         num.Coerce(g.rIn, k),
		rExt:        num.Coerce(g.rExt, k),
		capacitance: num.Coerce(g.capacitance, k),
		conductance: num.Coerce(g.conductance, k),
		kind:        k,
	}
}

// Coerce converts the group to the target kind; identity-preserving when
// the kind already matches.
func (g *InsulatorGroup) Coerce(k num.Kind) *InsulatorGroup {
	if g.kind == k {
		return g
	}
	return g.promote(k)
}

// NumKind returns the kind shared by every numeric field of the group.
func (g *InsulatorGroup) NumKind() num.Kind { return g.kind }

// Len returns the number of owned layers.
func (g *InsulatorGroup) Len() int { return len(g.parts) }

// Parts returns a copy of the owned layer list.
func (g *InsulatorGroup) Parts() []Part {
	out := make([]Part, len(g.parts))
	copy(out, g.parts)
	return out
}

// InnerRadius returns the radial inner bound of the group.
func (g *InsulatorGroup) InnerRadius() num.Scalar { return g.rIn }

// OuterRadius returns the radial outer bound.
func (g *InsulatorGroup) OuterRadius() num.Scalar { return g.rExt }

// Capacitance returns the series-equivalent per-unit-length capacitance.
func (g *InsulatorGroup) Capacitance() num.Scalar { return g.capacitance }

// Conductance returns the series-equivalent shunt conductance.
func (g *InsulatorGroup) Conductance() num.Scalar { return g.conductance }
