// File: materials.go
// Role: the Props value type (material-properties capability) and its
//       kind resolution / coercion behavior.

package materials

import (
	"github.com/voltlab/cablekit/num"
)

// Props holds the electromagnetic properties of a homogeneous material.
//
// Fields (SI units):
//   - Rho      — DC resistivity at the reference temperature T0 [Ω·m]
//   - EpsR     — relative permittivity (dimensionless)
//   - MuR      — relative permeability (dimensionless)
//   - T0       — reference temperature for Rho [°C]
//   - Alpha    — linear temperature coefficient of resistivity [1/°C]
//
// Props is an immutable value; Coerce returns a new value when the kind
// actually changes and the receiver unchanged otherwise.
type Props struct {
	Rho   num.Scalar
	EpsR  num.Scalar
	MuR   num.Scalar
	T0    num.Scalar
	Alpha num.Scalar
}

var _ num.Kinded = Props{}

// New assembles a Props from the five scalar fields.
// Complexity: O(1).
func New(rho, epsR, muR, t0, alpha num.Scalar) Props {
	return Props{Rho: rho, EpsR: epsR, MuR: muR, T0: t0, Alpha: alpha}
}

// NumKind returns the representation shared by the five fields: Uncertain
// if any field is uncertain, Plain otherwise.
func (p Props) NumKind() num.Kind {
	return num.Join(
		p.Rho.NumKind(), p.EpsR.NumKind(), p.MuR.NumKind(),
		p.T0.NumKind(), p.Alpha.NumKind(),
	)
}

// Coerce converts every field to the target kind. Same-kind coercion
// returns the receiver unchanged.
func (p Props) Coerce(k num.Kind) Props {
	if p.NumKind() == k {
		return p
	}
	return Props{
		Rho:   num.Coerce(p.Rho, k),
		EpsR:  num.Coerce(p.EpsR, k),
		MuR:   num.Coerce(p.MuR, k),
		T0:    num.Coerce(p.T0, k),
		Alpha: num.Coerce(p.Alpha, k),
	}
}

// IsProps reports whether v satisfies the material-properties capability.
// This is the predicate bound to the "material" capability in the trait
// registry; the rule engine never type-asserts materials anywhere else.
func IsProps(v any) bool {
	_, ok := v.(Props)
	return ok
}
