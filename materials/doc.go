// Package materials defines the electromagnetic material properties consumed
// by the cablekit constructors, plus a small built-in library of common
// conductor and insulation materials.
//
// A Props value is the opaque "material-properties" capability the rule
// engine checks with IsA: constructors only require that a material argument
// satisfies the capability; they never inspect formula-level semantics here.
//
// Props participates in numeric-kind resolution: a material built from
// uncertain scalars (e.g. a measured resistivity with tolerance) forces the
// whole object graph it is used in to the uncertain representation.
//
// Built-in library values are nominal IEC data expressed as plain scalars;
// wrap individual fields with num.U to model datasheet tolerances.
package materials
