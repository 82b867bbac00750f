// SPDX-License-Identifier: MIT
// Package: cablekit/cable
//
// system.go — a line cable system: cable designs placed at cross-section
// coordinates, plus the line length.

package cable

import (
	"github.com/google/uuid"

	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
	"github.com/voltlab/cablekit/validate"
)

// Position places one cable design at horizontal/vertical cross-section
// coordinates [m]; negative Y is below ground.
type Position struct {
	Design *Design
	X, Y   num.Scalar
}

// System is a line cable system: an ordered list of positioned designs and
// the line length, all sharing one numeric kind.
type System struct {
	uid       string
	name      string
	length    num.Scalar
	positions []Position
	kind      num.Kind
}

var _ num.Kinded = (*System)(nil)

// NewSystem creates an empty system with the given line length [m]; the
// length accepts plain or uncertain numeric raw input.
func NewSystem(name string, length any) (*System, error) {
	if name == "" {
		return nil, faultf(traits.ErrInvalidArgument, "system", "empty system name")
	}
	l, err := validate.Number("system", "length", length)
	if err != nil {
		return nil, err
	}
	if !l.IsFinite() || l.Value() <= 0 {
		return nil, faultf(traits.ErrNumericDomain, name, "length must be positive and finite, got %v", l)
	}
	return &System{uid: uuid.NewString(), name: name, length: l, kind: l.NumKind()}, nil
}

// AddPosition places a design at (x, y). The kind is resolved across the
// system's current kind, the coordinates and the design's own kind, with
// the usual mutate-or-promote contract: always use the returned system.
func (s *System) AddPosition(d *Design, x, y any) (*System, error) {
	if d == nil {
		return nil, faultf(traits.ErrInvalidArgument, s.name, "nil design")
	}
	xs, err := validate.Number("system", "x", x)
	if err != nil {
		return nil, err
	}
	ys, err := validate.Number("system", "y", y)
	if err != nil {
		return nil, err
	}
	if !xs.IsFinite() || !ys.IsFinite() {
		return nil, faultf(traits.ErrNumericDomain, s.name,
			"coordinates must be finite, got (%v, %v)", xs, ys)
	}

	k := num.Join(s.kind, num.ResolveKind(xs, ys, d))
	out := s
	if k != s.kind {
		out = s.promote(k)
	}
	out.positions = append(out.positions, Position{
		Design: d.Coerce(k),
		X:      num.Coerce(xs, k),
		Y:      num.Coerce(ys, k),
	})
	return out, nil
}

// promote returns a deep, kind-promoted copy of the system.
func (s *System) promote(k num.Kind) *System {
	warnPromotion("system", s.kind, k)
	positions := make([]Position, len(s.positions))
	for i, p := range s.positions {
		positions[i] = Position{
			Design: p.Design.Coerce(k),
			X:      num.Coerce(p.X, k),
			Y:      num.Coerce(p.Y, k),
		}
	}
	return &System{
		uid:       s.uid,
		name:      s.name,
		length:    num.Coerce(s.length, k),
		positions: positions,
		kind:      k,
	}
}

// Coerce converts the system to the target kind; identity-preserving when
// the kind already matches.
func (s *System) Coerce(k num.Kind) *System {
	if s.kind == k {
		return s
	}
	return s.promote(k)
}

// UID returns the system's unique identifier.
func (s *System) UID() string { return s.uid }

// Name returns the system name.
func (s *System) Name() string { return s.name }

// Length returns the line length.
func (s *System) Length() num.Scalar { return s.length }

// Len returns the number of positioned designs.
func (s *System) Len() int { return len(s.positions) }

// Positions returns a copy of the position list.
func (s *System) Positions() []Position {
	out := make([]Position, len(s.positions))
	copy(out, s.positions)
	return out
}

// NumKind returns the kind shared by every numeric field of the system.
func (s *System) NumKind() num.Kind { return s.kind }
