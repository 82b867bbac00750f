// Package num defines the single numeric representation used by every
// cablekit data-model object: a Scalar that is either a plain real number
// or an uncertain number carrying a propagated standard uncertainty.
//
// 🔢 What lives here?
//
//	• Kind       — the two numeric representations (Plain, Uncertain)
//	• Scalar     — immutable value type; all arithmetic propagates uncertainty
//	• Join       — kind lattice join (Uncertain absorbs Plain)
//	• ResolveKind— transitive kind resolution over heterogeneous candidates
//	• Kinded     — capability implemented by any object that can report the
//	  kind shared by all of its numeric fields (materials, parts, groups)
//
// Representation contract (strict):
//   - A Scalar never changes after creation; every operation returns a new
//     Scalar whose Kind is the Join of its operands' Kinds.
//   - Plain Scalars carry a zero uncertainty but remain Plain: promotion is
//     an explicit act (Coerce / AsUncertain), never a side effect of
//     arithmetic on plain values.
//   - Uncertainty propagation is first-order (linear) with uncorrelated
//     operands, matching the usual engineering treatment.
//
// Everything in this package is pure and allocation-free: no I/O, no locks,
// no globals. Higher layers (traits, validate, cable) build the rule engine
// and the copy-on-promote object graphs on top of these primitives.
package num
