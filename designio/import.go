// SPDX-License-Identifier: MIT
// Package: cablekit/designio
//
// import.go — document → validated aggregates. The importer translates raw
// field values into the constructor surface (positional arguments in the
// entity's declared order, named optionals via cable.Args) and lets the
// pipeline do every check.

package designio

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/voltlab/cablekit/cable"
	"github.com/voltlab/cablekit/materials"
	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/validate"
)

// ImportDesign decodes and constructs one cable design. The returned design
// passed every registered rule; any violation aborts the import with the
// pipeline's fault.
func ImportDesign(r io.Reader) (*cable.Design, error) {
	var doc designDoc
	if err := yaml.NewDecoder(r, yaml.Strict()).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadDocument, err)
	}
	return buildDesign(doc.Design)
}

// ImportSystem decodes and constructs one line system, rebuilding every
// positioned design through the full pipeline.
func ImportSystem(r io.Reader) (*cable.System, error) {
	var doc systemDoc
	if err := yaml.NewDecoder(r, yaml.Strict()).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadDocument, err)
	}

	length, err := decodeValue(doc.System.Length, nil)
	if err != nil {
		return nil, fmt.Errorf("system length: %w", err)
	}
	s, err := cable.NewSystem(doc.System.Name, length)
	if err != nil {
		return nil, err
	}

	for i, pos := range doc.System.Cables {
		d, err := buildDesign(pos.Design)
		if err != nil {
			return nil, fmt.Errorf("cable %d: %w", i, err)
		}
		x, err := decodeValue(pos.X, nil)
		if err != nil {
			return nil, fmt.Errorf("cable %d x: %w", i, err)
		}
		y, err := decodeValue(pos.Y, nil)
		if err != nil {
			return nil, fmt.Errorf("cable %d y: %w", i, err)
		}
		if s, err = s.AddPosition(d, x, y); err != nil {
			return nil, fmt.Errorf("cable %d: %w", i, err)
		}
	}
	return s, nil
}

// buildDesign reconstructs a design component by component, core outwards.
func buildDesign(spec designSpec) (*cable.Design, error) {
	d, err := cable.NewDesign(spec.Name)
	if err != nil {
		return nil, err
	}
	if len(spec.Components) == 0 {
		return nil, fmt.Errorf("%w: design %q has no components", ErrBadDocument, spec.Name)
	}

	for _, cs := range spec.Components {
		c, err := buildComponent(cs, d)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", cs.ID, err)
		}
		if d, err = d.AddComponent(c); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// buildComponent rebuilds one component. "inherit" on the first conductor
// layer resolves against the design built so far; inside a group it
// resolves against the group; on the first insulation layer against the
// finished conductor group.
func buildComponent(cs componentSpec, below *cable.Design) (*cable.Component, error) {
	if len(cs.Conductor) == 0 || len(cs.Insulation) == 0 {
		return nil, fmt.Errorf("%w: component needs conductor and insulation layers", ErrBadDocument)
	}

	var cond *cable.ConductorGroup
	for i, layer := range cs.Conductor {
		inherit := any(below)
		if i > 0 {
			inherit = cond
		}
		args, err := layerArgs(layer, inherit)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			cond, err = cable.NewConductorGroup(layer.Entity, args...)
		} else {
			cond, err = cond.Add(layer.Entity, args...)
		}
		if err != nil {
			return nil, err
		}
	}

	var ins *cable.InsulatorGroup
	for i, layer := range cs.Insulation {
		inherit := any(cond)
		if i > 0 {
			inherit = ins
		}
		args, err := layerArgs(layer, inherit)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			ins, err = cable.NewInsulatorGroup(layer.Entity, args...)
		} else {
			ins, err = ins.Add(layer.Entity, args...)
		}
		if err != nil {
			return nil, err
		}
	}

	return cable.NewComponent(cs.ID, cond, ins)
}

// layerArgs translates a layer's field map into the constructor call shape:
// required fields positionally in declaration order, everything else named.
// Unknown named fields are deliberately passed through — the pipeline's
// sanitize stage owns that fault.
func layerArgs(layer layerSpec, inherit any) ([]any, error) {
	entry, err := cable.Registry().Lookup(layer.Entity)
	if err != nil {
		return nil, err
	}

	args := make([]any, 0, len(layer.With))
	for _, f := range entry.Required {
		raw, present := layer.With[f]
		if !present {
			return nil, fmt.Errorf("%w: %s: missing field %q", ErrBadDocument, layer.Entity, f)
		}
		v, err := decodeValue(raw, inherit)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", layer.Entity, f, err)
		}
		args = append(args, v)
	}

	named := cable.Args{}
	for name, raw := range layer.With {
		if isRequired(entry.Required, name) {
			continue
		}
		v, err := decodeValue(raw, inherit)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", layer.Entity, name, err)
		}
		named[name] = v
	}
	if len(named) > 0 {
		args = append(args, named)
	}
	return args, nil
}

func isRequired(required []string, name string) bool {
	for _, f := range required {
		if f == name {
			return true
		}
	}
	return false
}

// decodeValue turns one raw YAML value into a pipeline-admissible input.
func decodeValue(v, inherit any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null value", ErrBadValue)

	case float64, int, int64, uint64:
		return asFloat(x), nil

	case string:
		if x == "inherit" {
			if inherit == nil {
				return nil, fmt.Errorf("%w: nothing to inherit from", ErrBadDocument)
			}
			return inherit, nil
		}
		m, ok := materials.Get(x)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMaterial, x)
		}
		return m, nil

	case map[string]any:
		if raw, ok := x["thickness"]; ok {
			t, err := scalarOf(raw)
			if err != nil {
				return nil, err
			}
			return validate.Thickness{T: t}, nil
		}
		if raw, ok := x["diameter"]; ok {
			d, err := scalarOf(raw)
			if err != nil {
				return nil, err
			}
			return validate.Diameter{D: d}, nil
		}
		if _, ok := x["value"]; ok {
			return scalarOf(x)
		}
		if _, ok := x["rho"]; ok {
			return materialOf(x)
		}
		return nil, fmt.Errorf("%w: map %v", ErrBadValue, x)

	default:
		return nil, fmt.Errorf("%w: %T", ErrBadValue, v)
	}
}

// scalarOf decodes a number or a {value, sigma} map into a num.Scalar.
func scalarOf(v any) (num.Scalar, error) {
	switch x := v.(type) {
	case float64, int, int64, uint64:
		return num.P(asFloat(x)), nil
	case map[string]any:
		raw, ok := x["value"]
		if !ok {
			return num.Scalar{}, fmt.Errorf("%w: map without value: %v", ErrBadValue, x)
		}
		val, err := scalarOf(raw)
		if err != nil {
			return num.Scalar{}, err
		}
		if raw, ok := x["sigma"]; ok {
			sig, err := scalarOf(raw)
			if err != nil {
				return num.Scalar{}, err
			}
			return num.U(val.Value(), sig.Value()), nil
		}
		return val, nil
	default:
		return num.Scalar{}, fmt.Errorf("%w: %T", ErrBadValue, v)
	}
}

// materialOf decodes an inline material map. Only rho is mandatory; the
// remaining properties default to vacuum-like values.
func materialOf(x map[string]any) (materials.Props, error) {
	get := func(key string, def float64) (num.Scalar, error) {
		raw, ok := x[key]
		if !ok {
			return num.P(def), nil
		}
		return scalarOf(raw)
	}

	rho, err := scalarOf(x["rho"])
	if err != nil {
		return materials.Props{}, err
	}
	epsR, err := get("eps_r", 1.0)
	if err != nil {
		return materials.Props{}, err
	}
	muR, err := get("mu_r", 1.0)
	if err != nil {
		return materials.Props{}, err
	}
	t0, err := get("t0", 20.0)
	if err != nil {
		return materials.Props{}, err
	}
	alpha, err := get("alpha", 0.0)
	if err != nil {
		return materials.Props{}, err
	}
	return materials.New(rho, epsR, muR, t0, alpha), nil
}

// asFloat normalizes the integer widths the YAML decoder may produce.
func asFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	}
	return 0
}
