// File: gmr.go
// Role: geometric mean radius of solid, tubular and stranded layers, and
//       the two-path equivalent GMR used when appending a conductive layer.

package formulas

import (
	"github.com/voltlab/cablekit/num"
)

// SolidGMR returns the geometric mean radius of a solid round conductor:
// gmr = r·e^(−μr/4).
func SolidGMR(r, muR num.Scalar) num.Scalar {
	return r.Mul(muR.Div(num.P(4)).Neg().Exp())
}

// TubularGMR returns the geometric mean radius of an annular conductor:
//
//	gmr = r_ext · exp(−μr·[ r_in⁴/(r_ext²−r_in²)²·ln(r_ext/r_in)
//	                        − (3·r_in² − r_ext²)/(4·(r_ext²−r_in²)) ])
//
// Limits: r_in → 0 recovers SolidGMR; r_in → r_ext tends to r_ext (a thin
// shell stores no internal flux).
func TubularGMR(rIn, rExt, muR num.Scalar) num.Scalar {
	if rIn.Value() == 0 {
		return SolidGMR(rExt, muR)
	}
	d2 := rExt.Pow(2).Sub(rIn.Pow(2))
	term1 := rIn.Pow(4).Div(d2.Pow(2)).Mul(rExt.Div(rIn).Ln())
	term2 := num.P(3).Mul(rIn.Pow(2)).Sub(rExt.Pow(2)).Div(num.P(4).Mul(d2))
	return rExt.Mul(muR.Mul(term1.Sub(term2)).Neg().Exp())
}

// WireArrayGMR returns the geometric mean radius of a circular layer of n
// identical round wires laid on a circle of radius rCircle:
//
//	gmr = (gmr_wire · n · rCircle^(n−1))^(1/n),  gmr_wire = r_wire·e^(−μr/4)
//
// For n = 1 this reduces to the single wire's own GMR.
func WireArrayGMR(rWire, n, rCircle, muR num.Scalar) num.Scalar {
	gw := SolidGMR(rWire, muR)
	if n.Value() == 1 {
		return gw
	}
	inner := gw.Mul(n).Mul(powS(rCircle, n.Sub(num.P(1))))
	return powS(inner, n.Inv())
}

// MeanRadius returns (r_in + r_ext)/2, the mean radius of an annular layer;
// concentric layers use it as the geometric mean distance between paths.
func MeanRadius(rIn, rExt num.Scalar) num.Scalar {
	return rIn.Add(rExt).Div(num.P(2))
}

// EquivalentGMR merges the GMR of an existing conductive path with that of
// a newly appended concentric layer:
//
//	gmr_eq = gmr₁^(β²) · gmr₂^((1−β)²) · gmd^(2·β·(1−β))
//
// where β is the current split of path 1, β = R₂/(R₁+R₂) (conductance
// weighted), and gmd the geometric mean distance between the paths.
func EquivalentGMR(gmr1, gmr2, gmd, r1, r2 num.Scalar) num.Scalar {
	beta := r2.Div(r1.Add(r2))
	comp := num.P(1).Sub(beta)
	t1 := powS(gmr1, beta.Pow(2))
	t2 := powS(gmr2, comp.Pow(2))
	t3 := powS(gmd, num.P(2).Mul(beta).Mul(comp))
	return t1.Mul(t2).Mul(t3)
}

// powS computes a^b for scalar exponents as e^(b·ln a), propagating
// uncertainty through both operands.
func powS(a, b num.Scalar) num.Scalar {
	return a.Ln().Mul(b).Exp()
}
