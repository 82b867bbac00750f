// SPDX-License-Identifier: MIT
// Package: cablekit/cable
//
// design.go — a full cable design: an ordered stack of components from the
// core outwards, under the same mutate-or-promote append discipline as the
// groups.

package cable

import (
	"github.com/google/uuid"

	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
)

// Design is an ordered stack of cable components (core outwards). Appended
// components are referenced immutably; promotion replaces the whole stack
// with kind-coerced copies.
type Design struct {
	uid        string
	name       string
	components []*Component
	kind       num.Kind
}

var _ num.Kinded = (*Design)(nil)

// NewDesign creates an empty design with a fresh unique identifier. A
// design without components is Plain until the first append resolves
// otherwise.
func NewDesign(name string) (*Design, error) {
	if name == "" {
		return nil, faultf(traits.ErrInvalidArgument, "design", "empty design name")
	}
	return &Design{uid: uuid.NewString(), name: name}, nil
}

// AddComponent appends a component:
//
//   - kind unchanged → the receiver is mutated in place and returned;
//   - kind changed   → a deep promoted copy is mutated and returned, the
//     receiver stays untouched and a promotion warning is emitted.
//
// Components must stack contiguously outwards: the new component's
// conductor must start exactly on the previous component's outer bound
// (air gaps are modeled as explicit air-filled layers).
func (d *Design) AddComponent(c *Component) (*Design, error) {
	if c == nil {
		return nil, faultf(traits.ErrInvalidArgument, d.name, "nil component")
	}
	if n := len(d.components); n > 0 {
		prev := d.components[n-1]
		if c.Conductor().InnerRadius().Value() != prev.OuterRadius().Value() {
			return nil, faultf(traits.ErrInvalidArgument, d.name,
				"component %q inner radius %v must sit exactly on the design's outer bound %v",
				c.ID(), c.Conductor().InnerRadius(), prev.OuterRadius())
		}
	}

	k := num.Join(d.kind, c.NumKind())
	out := d
	if k != d.kind {
		out = d.promote(k)
	}
	out.components = append(out.components, c.Coerce(k))
	return out, nil
}

// promote returns a deep, kind-promoted copy of the design.
func (d *Design) promote(k num.Kind) *Design {
	warnPromotion("design", d.kind, k)
	comps := make([]*Component, len(d.components))
	for i, c := range d.components {
		comps[i] = c.Coerce(k)
	}
	return &Design{uid: d.uid, name: d.name, components: comps, kind: k}
}

// Coerce converts the design to the target kind; identity-preserving when
// the kind already matches.
func (d *Design) Coerce(k num.Kind) *Design {
	if d.kind == k {
		return d
	}
	return d.promote(k)
}

// UID returns the design's unique identifier.
func (d *Design) UID() string { return d.uid }

// Name returns the design name.
func (d *Design) Name() string { return d.name }

// Len returns the number of components.
func (d *Design) Len() int { return len(d.components) }

// Components returns a copy of the component list (references are shared,
// components themselves are never mutated).
func (d *Design) Components() []*Component {
	out := make([]*Component, len(d.components))
	copy(out, d.components)
	return out
}

// NumKind returns the kind shared by every numeric field of the design.
func (d *Design) NumKind() num.Kind { return d.kind }

// OuterRadius returns the outer bound of the outermost component, or a
// plain zero for an empty design.
func (d *Design) OuterRadius() num.Scalar {
	if n := len(d.components); n > 0 {
		return d.components[n-1].OuterRadius()
	}
	return num.P(0)
}
