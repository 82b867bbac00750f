// File: dielectric.go
// Role: capacitance and shunt conductance of coaxial insulating layers and
//       their series/parallel combinations across an insulator stack.

package formulas

import (
	"math"

	"github.com/voltlab/cablekit/num"
)

// CoaxialCapacitance returns the per-unit-length capacitance of a coaxial
// insulating layer:
//
//	C' = 2π·ε₀·εr / ln(r_ext/r_in)   [F/m]
func CoaxialCapacitance(rIn, rExt, epsR num.Scalar) num.Scalar {
	return num.P(2 * math.Pi * Eps0).Mul(epsR).Div(rExt.Div(rIn).Ln())
}

// ShuntConductance returns the per-unit-length radial leakage conductance
// of a coaxial insulating layer with bulk resistivity ρ:
//
//	G' = 2π / (ρ·ln(r_ext/r_in))   [S/m]
func ShuntConductance(rIn, rExt, rho num.Scalar) num.Scalar {
	return num.P(2 * math.Pi).Div(rho.Mul(rExt.Div(rIn).Ln()))
}

// SeriesCapacitance combines two radially stacked layer capacitances:
// 1/C = 1/C₁ + 1/C₂ (the layers see the same charge).
func SeriesCapacitance(c1, c2 num.Scalar) num.Scalar {
	return c1.Mul(c2).Div(c1.Add(c2))
}

// SeriesConductance combines the radial leakage of two stacked layers:
// the paths are in series along the radius, so the conductances add
// reciprocally like the capacitances: 1/G = 1/G₁ + 1/G₂.
func SeriesConductance(g1, g2 num.Scalar) num.Scalar {
	return g1.Mul(g2).Div(g1.Add(g2))
}
