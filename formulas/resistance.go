// File: resistance.go
// Role: DC resistance of annular and stranded layers, temperature
//       correction, parallel combination.

package formulas

import (
	"math"

	"github.com/voltlab/cablekit/num"
)

// Eps0 is the vacuum permittivity [F/m].
const Eps0 = 8.8541878128e-12

// TemperatureCorrection returns ρ(T) = ρ₀·(1 + α·(T − T₀)).
// Complexity: O(1).
func TemperatureCorrection(rho, alpha, t0, t num.Scalar) num.Scalar {
	return rho.Mul(num.P(1).Add(alpha.Mul(t.Sub(t0))))
}

// CrossSectionAnnulus returns π·(r_ext² − r_in²), the conducting area of a
// tubular layer.
func CrossSectionAnnulus(rIn, rExt num.Scalar) num.Scalar {
	return num.P(math.Pi).Mul(rExt.Pow(2).Sub(rIn.Pow(2)))
}

// CrossSectionWires returns n·π·r_wire², the conducting area of a layer of
// n round wires.
func CrossSectionWires(n, rWire num.Scalar) num.Scalar {
	return n.Mul(num.P(math.Pi)).Mul(rWire.Pow(2))
}

// HelicalCorrection returns the stranding overlength factor
// k(λ) = √(1 + (π/λ)²) for lay ratio λ > 0, and exactly 1 for λ = 0
// (longitudinal strands).
func HelicalCorrection(layRatio num.Scalar) num.Scalar {
	if layRatio.Value() == 0 {
		return num.Coerce(num.P(1), layRatio.NumKind())
	}
	return num.P(1).Add(num.P(math.Pi).Div(layRatio).Pow(2)).Sqrt()
}

// TubularResistance returns the per-unit-length DC resistance of an annular
// conductor at temperature t:
//
//	R' = ρ₀·(1 + α·(t − t₀)) / (π·(r_ext² − r_in²))   [Ω/m]
func TubularResistance(rIn, rExt, rho, alpha, t0, t num.Scalar) num.Scalar {
	return TemperatureCorrection(rho, alpha, t0, t).Div(CrossSectionAnnulus(rIn, rExt))
}

// WireArrayResistance returns the per-unit-length DC resistance of a layer
// of n helically laid round wires in parallel:
//
//	R' = ρ₀·(1 + α·(t − t₀))·k(λ) / (n·π·r_wire²)   [Ω/m]
func WireArrayResistance(rWire, n, layRatio, rho, alpha, t0, t num.Scalar) num.Scalar {
	rhoT := TemperatureCorrection(rho, alpha, t0, t)
	return rhoT.Mul(HelicalCorrection(layRatio)).Div(CrossSectionWires(n, rWire))
}

// ParallelResistance returns R₁∥R₂ = R₁·R₂/(R₁+R₂), the equivalent of two
// conductive paths in parallel. For all-positive finite inputs the result
// is strictly less than either operand.
func ParallelResistance(r1, r2 num.Scalar) num.Scalar {
	return r1.Mul(r2).Div(r1.Add(r2))
}
