// Package formulas is cablekit's physical-formula layer: per-unit-length
// resistance, geometric mean radius, capacitance and conductance of annular
// and stranded cable layers.
//
// Contract with the construction engine (strict):
//   - Every function consumes already-normalized, homogeneously-typed
//     num.Scalar fields and returns scalars; raw or proxy inputs never
//     reach this package.
//   - Functions are pure: no I/O, no state, no faults. Out-of-domain
//     arguments produce non-finite scalars under IEEE semantics, which the
//     rule engine has already excluded for validated records.
//   - Uncertainty propagates through every formula because all arithmetic
//     goes through num.Scalar.
//
// Formula inventory:
//
//	• TemperatureCorrection — ρ(T) = ρ₀·(1 + α·(T − T₀))
//	• TubularResistance     — R' = ρ(T) / (π·(r_ext² − r_in²))
//	• WireArrayResistance   — R' = ρ(T)·k(λ) / (n·π·r_wire²)
//	• HelicalCorrection     — k(λ) = √(1 + (π/λ)²), k(0) = 1
//	• ParallelResistance    — R₁∥R₂
//	• SolidGMR              — r·e^(−μr/4)
//	• TubularGMR            — annular Grover expression, solid/thin limits
//	• WireArrayGMR          — (gmr_w · n · R^(n−1))^(1/n)
//	• EquivalentGMR         — two-path merge via current-split exponents
//	• CoaxialCapacitance    — C' = 2π·ε₀·εr / ln(r_ext/r_in)
//	• ShuntConductance      — G' = 2π / (ρ·ln(r_ext/r_in))
//
// All results are per unit length (SI).
package formulas
