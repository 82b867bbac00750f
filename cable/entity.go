// SPDX-License-Identifier: MIT
// Package: cablekit/cable
//
// entity.go — entity-type identifiers, trait registration and parse
// functions for the built-in data model.
//
// Design contract (strict):
//   • All built-in entities are registered by explicit calls in
//     registerBuiltins, executed once at package initialization; no other
//     call site may touch the registry's built-in entries.
//   • Parse functions are the only proxy-resolving code in the package.
//   • Positional order below IS the public constructor surface; changing it
//     is a breaking API change.

package cable

import (
	"github.com/voltlab/cablekit/materials"
	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
	"github.com/voltlab/cablekit/validate"
)

// Entity-type identifiers accepted by the convenience constructors and Add.
const (
	// WireArray is a circular layer of n identical helically-laid wires.
	// Positional: r_in, r_wire, n_wires, lay_ratio, material.
	WireArray = "wirearray"

	// Strip is a single helically-laid rectangular strip.
	// Positional: r_in, thickness, width, lay_ratio, material.
	Strip = "strip"

	// Tubular is a solid annular conductor.
	// Positional: r_in, r_ext, material.
	Tubular = "tubular"

	// Insulator is a coaxial insulating layer.
	// Positional: r_in, r_ext, material.
	Insulator = "insulator"

	// Semicon is a semiconductive screen layer.
	// Positional: r_in, r_ext, material.
	Semicon = "semicon"
)

// Additional field names beyond the shared radii/temperature constants.
const (
	fieldRWire    = "r_wire"
	fieldNWires   = "n_wires"
	fieldLayRatio = "lay_ratio"
	fieldThick    = "thickness"
	fieldWidth    = "width"
	fieldMaterial = "material"
)

// CapMaterial is the capability name bound to materials.IsProps.
const CapMaterial = "material"

// DefaultTemperature is the operating temperature filled in when the caller
// does not supply one [°C]. Override with WithDefaultTemperature.
const DefaultTemperature = 20.0

// registry is the package's trait registry, fully populated at init time.
var registry = newBuiltinRegistry(DefaultTemperature)

// Registry exposes the built-in trait registry for introspection tooling
// (CLI describe, documentation generators). Treat it as read-only.
func Registry() *traits.Registry { return registry }

func newBuiltinRegistry(defTemp float64) *traits.Registry {
	reg := traits.NewRegistry()
	registerBuiltins(reg, defTemp)
	return reg
}

// registerBuiltins declares every built-in entity type. Extension for a new
// entity requires exactly this: fields, bundles, admissibility, extra rules
// and a parse function — no scattered checks anywhere else.
func registerBuiltins(reg *traits.Registry, defTemp float64) {
	reg.RegisterCapability(CapMaterial, materials.IsProps)

	temperature := []traits.OptionalField{{Name: traits.FieldTemperature, Default: defTemp}}

	reg.Register(WireArray, traits.Entry{
		RadiiBundle:       true,
		TemperatureBundle: true,
		Required:          []string{traits.FieldRIn, fieldRWire, fieldNWires, fieldLayRatio, fieldMaterial},
		Optional:          temperature,
		RadiusFields:      []string{traits.FieldRIn, fieldRWire},
		RadiusAdmissible:  validate.AdmitRadiusProxies,
		Extra: []traits.Rule{
			traits.IntegerField(fieldNWires),
			traits.Positive(fieldNWires),
			traits.Finite(fieldRWire),
			traits.Positive(fieldRWire),
			traits.Finite(fieldLayRatio),
			traits.Nonneg(fieldLayRatio),
			traits.IsA(CapMaterial, fieldMaterial),
		},
		Parse: parseWireArray,
	})

	reg.Register(Strip, traits.Entry{
		RadiiBundle:       true,
		TemperatureBundle: true,
		Required:          []string{traits.FieldRIn, fieldThick, fieldWidth, fieldLayRatio, fieldMaterial},
		Optional:          temperature,
		RadiusFields:      []string{traits.FieldRIn, fieldThick},
		RadiusAdmissible:  validate.AdmitRadiusProxies,
		Extra: []traits.Rule{
			traits.Finite(fieldWidth),
			traits.Positive(fieldWidth),
			traits.Finite(fieldLayRatio),
			traits.Nonneg(fieldLayRatio),
			traits.IsA(CapMaterial, fieldMaterial),
		},
		Parse: parseStrip,
	})

	annular := func(entity string) traits.Entry {
		return traits.Entry{
			RadiiBundle:       true,
			TemperatureBundle: true,
			Required:          []string{traits.FieldRIn, traits.FieldRExt, fieldMaterial},
			Optional:          temperature,
			RadiusFields:      []string{traits.FieldRIn, traits.FieldRExt},
			RadiusAdmissible:  validate.AdmitRadiusProxies,
			Extra:             []traits.Rule{traits.IsA(CapMaterial, fieldMaterial)},
			Parse:             parseAnnular,
		}
	}
	reg.Register(Tubular, annular(Tubular))
	reg.Register(Insulator, annular(Insulator))
	reg.Register(Semicon, annular(Semicon))
}

// parseCommon resolves the fields every entity shares: inner radius,
// temperature and the material object.
func parseCommon(entity string, bound map[string]any, rec *traits.Record) error {
	rIn, err := validate.ResolveInnerRadius(entity, bound[traits.FieldRIn])
	if err != nil {
		return err
	}
	rec.Scalars[traits.FieldRIn] = rIn

	temp, err := validate.Number(entity, traits.FieldTemperature, bound[traits.FieldTemperature])
	if err != nil {
		return err
	}
	rec.Scalars[traits.FieldTemperature] = temp

	rec.Objects[fieldMaterial] = bound[fieldMaterial]
	return nil
}

// parseWireArray resolves r_wire (numeric or diameter proxy) and derives
// the layer's outer radius r_ext = r_in + 2·r_wire.
func parseWireArray(entity string, bound map[string]any) (traits.Record, error) {
	rec := traits.NewRecord()
	if err := parseCommon(entity, bound, &rec); err != nil {
		return traits.Record{}, err
	}

	rWire, err := validate.ResolveInnerRadius(entity, bound[fieldRWire])
	if err != nil {
		return traits.Record{}, err
	}
	rec.Scalars[fieldRWire] = rWire

	n, err := validate.Number(entity, fieldNWires, bound[fieldNWires])
	if err != nil {
		return traits.Record{}, err
	}
	rec.Scalars[fieldNWires] = n

	lay, err := validate.Number(entity, fieldLayRatio, bound[fieldLayRatio])
	if err != nil {
		return traits.Record{}, err
	}
	rec.Scalars[fieldLayRatio] = lay

	rIn := rec.Scalars[traits.FieldRIn]
	rec.Scalars[traits.FieldRExt] = rIn.Add(rWire.Mul(num.P(2)))
	return rec, nil
}

// parseStrip resolves the strip thickness (numeric or Thickness proxy) into
// the absolute outer radius r_ext = r_in + thickness.
func parseStrip(entity string, bound map[string]any) (traits.Record, error) {
	rec := traits.NewRecord()
	if err := parseCommon(entity, bound, &rec); err != nil {
		return traits.Record{}, err
	}

	rIn := rec.Scalars[traits.FieldRIn]

	// A plain number on the thickness slot is a thickness, not a radius.
	raw := bound[fieldThick]
	if s, ok := validate.AsScalar(raw); ok {
		raw = validate.Thickness{T: s}
	}
	rExt, err := validate.ResolveOuterRadius(entity, raw, rIn)
	if err != nil {
		return traits.Record{}, err
	}
	rec.Scalars[traits.FieldRExt] = rExt
	rec.Scalars[fieldThick] = rExt.Sub(rIn)

	width, err := validate.Number(entity, fieldWidth, bound[fieldWidth])
	if err != nil {
		return traits.Record{}, err
	}
	rec.Scalars[fieldWidth] = width

	lay, err := validate.Number(entity, fieldLayRatio, bound[fieldLayRatio])
	if err != nil {
		return traits.Record{}, err
	}
	rec.Scalars[fieldLayRatio] = lay
	return rec, nil
}

// parseAnnular resolves a plain annulus: r_ext may be absolute, a thickness
// over r_in, or a diameter.
func parseAnnular(entity string, bound map[string]any) (traits.Record, error) {
	rec := traits.NewRecord()
	if err := parseCommon(entity, bound, &rec); err != nil {
		return traits.Record{}, err
	}

	rExt, err := validate.ResolveOuterRadius(entity, bound[traits.FieldRExt], rec.Scalars[traits.FieldRIn])
	if err != nil {
		return traits.Record{}, err
	}
	rec.Scalars[traits.FieldRExt] = rExt
	return rec, nil
}
