// File: types.go
// Role: Kind enumeration, the Scalar value type, constructors and accessors.
// Determinism:
//   - Scalar is a plain value type; equality and identity are structural.
//   - No hidden state: Kind is stored explicitly, never inferred from sigma.

package num

import (
	"fmt"
	"math"
)

// Kind identifies the numeric representation shared by a set of values.
//
//   - Plain     — ordinary real scalar, no uncertainty tracking.
//   - Uncertain — central value plus propagated standard uncertainty.
//
// Uncertain is strictly more general than Plain: Join(Plain, Uncertain)
// is Uncertain. The zero value is Plain.
type Kind uint8

const (
	// Plain is an ordinary real scalar with no uncertainty tracking.
	Plain Kind = iota

	// Uncertain is a scalar carrying a central value and a propagated
	// standard uncertainty; arithmetic on Uncertain scalars propagates it.
	Uncertain
)

// String renders the kind for diagnostics ("plain" / "uncertain").
func (k Kind) String() string {
	if k == Uncertain {
		return "uncertain"
	}
	return "plain"
}

// Kinded is implemented by any object able to report the single Kind shared
// by all of its numeric fields (a material, a part, a whole aggregate).
// ResolveKind consults this capability when walking heterogeneous inputs.
type Kinded interface {
	// NumKind returns the numeric representation of every field of the
	// receiver. For composites this is the kind shared at every depth.
	NumKind() Kind
}

// Scalar is the sole numeric representation used by cablekit records and
// core objects. It is immutable: every operation returns a fresh Scalar.
//
// Invariants:
//   - sig ≥ 0 whenever val is finite (constructors take |sigma|).
//   - kind == Plain ⇒ sig == 0.
type Scalar struct {
	val  float64
	sig  float64
	kind Kind
}

// compile-time capability check
var _ Kinded = Scalar{}

// P returns a Plain scalar with the given central value.
// Complexity: O(1).
func P(v float64) Scalar {
	return Scalar{val: v}
}

// U returns an Uncertain scalar with central value v and standard
// uncertainty |sigma|. A zero sigma still yields an Uncertain scalar:
// kind is representation, not magnitude.
// Complexity: O(1).
func U(v, sigma float64) Scalar {
	return Scalar{val: v, sig: math.Abs(sigma), kind: Uncertain}
}

// Value returns the central value.
func (s Scalar) Value() float64 { return s.val }

// Sigma returns the propagated standard uncertainty (0 for Plain scalars).
func (s Scalar) Sigma() float64 { return s.sig }

// NumKind returns the scalar's representation kind.
func (s Scalar) NumKind() Kind { return s.kind }

// IsFinite reports whether the central value is finite (not NaN, not ±Inf).
// Rule evaluation uses the central value only; an uncertain scalar with a
// finite centre and any sigma is finite.
func (s Scalar) IsFinite() bool {
	return !math.IsNaN(s.val) && !math.IsInf(s.val, 0)
}

// IsInteger reports whether the central value is integral.
func (s Scalar) IsInteger() bool {
	return s.IsFinite() && s.val == math.Trunc(s.val)
}

// Less compares central values. Ordering of uncertain scalars is by centre,
// the same convention the original uncertain-number arithmetic uses.
func (s Scalar) Less(o Scalar) bool { return s.val < o.val }

// LessEq compares central values (≤).
func (s Scalar) LessEq(o Scalar) bool { return s.val <= o.val }

// String renders "v" for Plain and "v ± σ" for Uncertain scalars.
func (s Scalar) String() string {
	if s.kind == Uncertain {
		return fmt.Sprintf("%g ± %g", s.val, s.sig)
	}
	return fmt.Sprintf("%g", s.val)
}
