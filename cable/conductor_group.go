// SPDX-License-Identifier: MIT
// Package: cablekit/cable
//
// conductor_group.go — the mutable aggregate of conductive layers and its
// resolve → coerce → mutate-or-promote append operation.
//
// Aliasing contract (strict):
//   • Parts are stored by value: the group owns its subtree exclusively.
//   • Add mutates in place only when the resolved kind equals the group's
//     current kind; otherwise it promotes (deep copy) FIRST, then mutates
//     and returns the new group, leaving the original untouched and stale.
//   • No fault path mutates anything: validation and kind resolution happen
//     before the first write.

package cable

import (
	"github.com/voltlab/cablekit/formulas"
	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
)

// ConductorGroup aggregates concentric conductive layers (wire arrays,
// strips, tubes) and maintains their per-unit-length equivalents: parallel
// resistance, equivalent GMR and total conducting cross-section.
//
// Not safe for concurrent mutation; see the package documentation.
type ConductorGroup struct {
	parts []Part

	rIn          num.Scalar
	rExt         num.Scalar
	resistance   num.Scalar
	gmr          num.Scalar
	crossSection num.Scalar

	kind num.Kind
}

var _ num.Kinded = (*ConductorGroup)(nil)

// NewConductorGroup validates and constructs the group's first conductive
// layer. The group's kind is resolved from every numeric input, nested
// material fields included.
func NewConductorGroup(entity string, args ...any) (*ConductorGroup, error) {
	p, err := buildConductivePart(entity, args, num.Plain)
	if err != nil {
		return nil, err
	}

	return &ConductorGroup{
		parts:        []Part{p},
		rIn:          p.RIn,
		rExt:         p.RExt,
		resistance:   p.Resistance,
		gmr:          p.GMR,
		crossSection: p.CrossSection,
		kind:         p.NumKind(),
	}, nil
}

// Add validates a new conductive layer, resolves the numeric kind across
// the group's current kind and the new inputs, and appends:
//
//   - kind unchanged → the receiver is mutated in place and returned;
//   - kind changed   → a deep, promoted copy is mutated and returned; the
//     receiver is left completely unmodified and a promotion warning is
//     emitted. Callers must always use the returned group.
//
// The new layer must sit exactly on the group's current outer bound: an
// undercut overlaps the existing stack, and a layer starting further out
// would leave an implicit air gap (gaps are modeled explicitly with an
// air-filled annular layer). Pass the group itself as the raw inner-radius
// argument to inherit the bound exactly.
func (g *ConductorGroup) Add(entity string, args ...any) (*ConductorGroup, error) {
	p, err := buildConductivePart(entity, args, g.kind)
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

	prevResistance := out.resistance
	out.parts = append(out.parts, p)
	out.rExt = p.RExt
	out.resistance = formulas.ParallelResistance(prevResistance, p.Resistance)
	out.gmr = formulas.EquivalentGMR(
		out.gmr, p.GMR,
		formulas.MeanRadius(p.RIn, p.RExt),
		prevResistance, p.Resistance,
	)
	out.crossSection = out.crossSection.Add(p.CrossSection)
	return out, nil
}

// buildConductivePart runs the pipeline for a conductive entity, resolves
// the kind against the floor (the owning group's current kind) and invokes
// the numeric core constructor.
func buildConductivePart(entity string, args []any, floor num.Kind) (Part, error) {
	class, known := classOf[entity]
	if known && class != ClassWireArray && class != ClassStrip && class != ClassTubular {
		return Part{}, faultf(traits.ErrInvalidArgument, entity,
			"entity is not a conductive layer")
	}

	rec, err := validateEntity(entity, args)
	if err != nil {
		return Part{}, err
	}

	kind := num.Join(floor, rec.Kind())
	rec = coerceRecord(rec, kind)
	return newPart(entity, rec, kind), nil
}

// promote returns a deep, type-promoted copy of the group; the receiver and
// everything reachable from it stay unmodified.
func (g *ConductorGroup) promote(k num.Kind) *ConductorGroup {
	warnPromotion("conductor_group", g.kind, k)
	parts := make([]Part, len(g.parts))
	for i, p := range g.parts {
		parts[i] = p.coerce(k)
	}
	return &ConductorGroup{
		parts:        parts,
		rIn:          num.Coerce(g.rIn, k),
		rExt:         num.Coerce(g.rExt, k),
		resistance:   num.Coerce(g.resistance, k),
		gmr:          num.Coerce(g.gmr, k),
		crossSection: num.Coerce(g.crossSection, k),
		kind:         k,
	}
}

// Coerce converts the group to the target kind: the exact same group is
// returned when the kind already matches (identity-preserving); otherwise a
// deep promoted copy is returned and the receiver is untouched.
func (g *ConductorGroup) Coerce(k num.Kind) *ConductorGroup {
	if g.kind == k {
		return g
	}
	return g.promote(k)
}

// NumKind returns the kind shared by every numeric field of the group.
func (g *ConductorGroup) NumKind() num.Kind { return g.kind }

// Len returns the number of owned layers.
func (g *ConductorGroup) Len() int { return len(g.parts) }

// Parts returns a copy of the owned layer list; the group retains exclusive
// ownership of its subtree.
func (g *ConductorGroup) Parts() []Part {
	out := make([]Part, len(g.parts))
	copy(out, g.parts)
	return out
}

// InnerRadius returns the radial inner bound of the group.
func (g *ConductorGroup) InnerRadius() num.Scalar { return g.rIn }

// OuterRadius returns the radial outer bound; passing the group as a raw
// inner-radius argument inherits it.
func (g *ConductorGroup) OuterRadius() num.Scalar { return g.rExt }

// Resistance returns the parallel-equivalent per-unit-length resistance.
func (g *ConductorGroup) Resistance() num.Scalar { return g.resistance }

// GMR returns the equivalent geometric mean radius.
func (g *ConductorGroup) GMR() num.Scalar { return g.gmr }

// CrossSection returns the total conducting cross-section.
func (g *ConductorGroup) CrossSection() num.Scalar { return g.crossSection }
