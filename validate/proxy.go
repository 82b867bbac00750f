// SPDX-License-Identifier: MIT
// Package: cablekit/validate
//
// proxy.go — geometric proxy wrappers and their resolution helpers.
//
// A proxy is a raw constructor argument that is not itself a final numeric
// value: a thickness to be added to the inherited inner radius, a diameter
// to be halved, or a previously built part whose outer radius becomes the
// new part's inner radius. Proxies exist only between the caller and parse;
// nothing downstream of parse ever sees one.

package validate

import (
	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
)

// Thickness wraps a radial thickness: as an outer-radius argument it
// resolves to r_in + T.
type Thickness struct{ T num.Scalar }

// Diameter wraps a diameter: as a radius argument it resolves to D/2.
type Diameter struct{ D num.Scalar }

// InnerRadiusSource is the capability of previously built parts and groups
// whose outer radius can be inherited as a new part's inner radius.
type InnerRadiusSource interface {
	// OuterRadius returns the radial outer bound of the object.
	OuterRadius() num.Scalar
}

// AsScalar converts a plain numeric raw value (num.Scalar, float64, int)
// to a canonical scalar. The second result is false for anything else,
// proxies included.
func AsScalar(v any) (num.Scalar, bool) {
	switch x := v.(type) {
	case num.Scalar:
		return x, true
	case float64:
		return num.P(x), true
	case int:
		return num.P(float64(x)), true
	}
	return num.Scalar{}, false
}

// Number resolves a non-radius numeric field (temperature, lay ratio, wire
// count). Only plain numeric raw values are admitted; proxies on such
// fields are an invalid-argument fault.
func Number(entity, field string, v any) (num.Scalar, error) {
	if s, ok := AsScalar(v); ok {
		return s, nil
	}
	return num.Scalar{}, faultf(traits.ErrInvalidArgument, entity,
		"field %q must be numeric, got %T", field, v)
}

// ResolveInnerRadius resolves a raw inner-radius argument: a plain numeric
// value, a Diameter proxy, or an InnerRadiusSource whose outer radius is
// inherited.
func ResolveInnerRadius(entity string, v any) (num.Scalar, error) {
	if s, ok := AsScalar(v); ok {
		return s, nil
	}
	switch x := v.(type) {
	case Diameter:
		return x.D.Div(num.P(2)), nil
	case InnerRadiusSource:
		return x.OuterRadius(), nil
	}
	return num.Scalar{}, faultf(traits.ErrInvalidArgument, entity,
		"inner radius: unsupported raw input %T", v)
}

// ResolveOuterRadius resolves a raw outer-radius argument against the
// already-resolved inner radius: a plain numeric value, a Thickness proxy
// (rIn + T), or a Diameter proxy (D/2).
func ResolveOuterRadius(entity string, v any, rIn num.Scalar) (num.Scalar, error) {
	if s, ok := AsScalar(v); ok {
		return s, nil
	}
	switch x := v.(type) {
	case Thickness:
		return rIn.Add(x.T), nil
	case Diameter:
		return x.D.Div(num.P(2)), nil
	}
	return num.Scalar{}, faultf(traits.ErrInvalidArgument, entity,
		"outer radius: unsupported raw input %T", v)
}

// AdmitRadiusProxies widens traits.DefaultRadiusAdmissible to additionally
// accept Thickness, Diameter and InnerRadiusSource raw inputs. Entities
// that support proxy radii register this predicate in their trait entry.
func AdmitRadiusProxies(v any) bool {
	if traits.DefaultRadiusAdmissible(v) {
		return true
	}
	switch v.(type) {
	case Thickness, Diameter, InnerRadiusSource:
		return true
	}
	return false
}
