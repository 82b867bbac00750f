// SPDX-License-Identifier: MIT
// Package: cablekit/cable
//
// component.go — a cable component: one conductor group wrapped by one
// insulator group (core, sheath, armor, ...).

package cable

import (
	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
)

// Component pairs a conductor group with the insulator group wrapped
// around it. Both groups are referenced immutably: a component never
// mutates its groups, and kind alignment at construction coerces copies
// rather than rewriting the originals.
type Component struct {
	id         string
	conductor  *ConductorGroup
	insulation *InsulatorGroup
	kind       num.Kind
}

var _ num.Kinded = (*Component)(nil)

// NewComponent assembles a component from its two groups. The insulation
// must wrap the conductor exactly: its inner bound must equal the
// conductor's outer bound (an air gap is its own explicit layer). If the
// groups disagree on kind, the lower-kinded group is promoted to a copy;
// the caller's groups are never modified.
func NewComponent(id string, cond *ConductorGroup, ins *InsulatorGroup) (*Component, error) {
	if id == "" {
		return nil, faultf(traits.ErrInvalidArgument, "component", "empty component id")
	}
	if cond == nil || ins == nil {
		return nil, faultf(traits.ErrInvalidArgument, id, "component needs both a conductor and an insulator group")
	}
	if ins.InnerRadius().Value() != cond.OuterRadius().Value() {
		return nil, faultf(traits.ErrInvalidArgument, id,
			"insulation inner radius %v must sit exactly on conductor outer radius %v",
			ins.InnerRadius(), cond.OuterRadius())
	}

	k := num.ResolveKind(cond, ins)
	return &Component{
		id:         id,
		conductor:  cond.Coerce(k),
		insulation: ins.Coerce(k),
		kind:       k,
	}, nil
}

// Coerce converts the component to the target kind; identity-preserving
// when the kind already matches, a deep promoted copy otherwise.
func (c *Component) Coerce(k num.Kind) *Component {
	if c.kind == k {
		return c
	}
	warnPromotion("component", c.kind, k)
	return &Component{
		id:         c.id,
		conductor:  c.conductor.Coerce(k),
		insulation: c.insulation.Coerce(k),
		kind:       k,
	}
}

// ID returns the component identifier ("core", "sheath", ...).
func (c *Component) ID() string { return c.id }

// Conductor returns the conductive group (read-only reference).
func (c *Component) Conductor() *ConductorGroup { return c.conductor }

// Insulation returns the dielectric group (read-only reference).
func (c *Component) Insulation() *InsulatorGroup { return c.insulation }

// NumKind returns the kind shared by every numeric field of the component.
func (c *Component) NumKind() num.Kind { return c.kind }

// OuterRadius returns the outer bound of the insulation — the component's
// radial extent, inherited by the next component out.
func (c *Component) OuterRadius() num.Scalar { return c.insulation.OuterRadius() }
