// SPDX-License-Identifier: MIT
// Package: cablekit/designio
//
// export.go — aggregates → document. Exported layers carry absolute,
// resolved values (no proxies, no "inherit"), so an exported document
// re-imports without context.

package designio

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/voltlab/cablekit/cable"
	"github.com/voltlab/cablekit/materials"
	"github.com/voltlab/cablekit/num"
)

// ExportDesign writes the design as a YAML document. The output round-trips
// through ImportDesign into an equivalent design (fresh UID, same values).
func ExportDesign(w io.Writer, d *cable.Design) error {
	enc := yaml.NewEncoder(w, yaml.Indent(2))
	defer enc.Close()
	return enc.Encode(designDoc{Design: specOfDesign(d)})
}

// ExportSystem writes the system as a YAML document, designs inlined.
func ExportSystem(w io.Writer, s *cable.System) error {
	spec := systemSpec{
		Name:   s.Name(),
		Length: valueOf(s.Length()),
	}
	for _, p := range s.Positions() {
		spec.Cables = append(spec.Cables, positionSpec{
			X:      valueOf(p.X),
			Y:      valueOf(p.Y),
			Design: specOfDesign(p.Design),
		})
	}
	enc := yaml.NewEncoder(w, yaml.Indent(2))
	defer enc.Close()
	return enc.Encode(systemDoc{System: spec})
}

func specOfDesign(d *cable.Design) designSpec {
	spec := designSpec{Name: d.Name()}
	for _, c := range d.Components() {
		cs := componentSpec{ID: c.ID()}
		for _, p := range c.Conductor().Parts() {
			cs.Conductor = append(cs.Conductor, specOfPart(p))
		}
		for _, p := range c.Insulation().Parts() {
			cs.Insulation = append(cs.Insulation, specOfPart(p))
		}
		spec.Components = append(spec.Components, cs)
	}
	return spec
}

// specOfPart renders one layer with exactly the fields its entity declares.
func specOfPart(p cable.Part) layerSpec {
	with := map[string]any{
		"r_in":        valueOf(p.RIn),
		"temperature": valueOf(p.Temperature),
		"material":    specOfMaterial(p.Material),
	}
	switch p.Class {
	case cable.ClassWireArray:
		with["r_wire"] = valueOf(p.RWire)
		with["n_wires"] = int(p.NWires.Value())
		with["lay_ratio"] = valueOf(p.LayRatio)
	case cable.ClassStrip:
		with["thickness"] = valueOf(p.Thick)
		with["width"] = valueOf(p.Width)
		with["lay_ratio"] = valueOf(p.LayRatio)
	default:
		with["r_ext"] = valueOf(p.RExt)
	}
	return layerSpec{Entity: p.Entity, With: with}
}

// specOfMaterial always inlines properties: library names are a shorthand
// for authors, not an export format, and inlining keeps documents stable
// against library revisions.
func specOfMaterial(m materials.Props) map[string]any {
	return map[string]any{
		"rho":   valueOf(m.Rho),
		"eps_r": valueOf(m.EpsR),
		"mu_r":  valueOf(m.MuR),
		"t0":    valueOf(m.T0),
		"alpha": valueOf(m.Alpha),
	}
}

// valueOf renders a scalar: bare number for plain, {value, sigma} map for
// uncertain.
func valueOf(s num.Scalar) any {
	if s.NumKind() == num.Plain {
		return s.Value()
	}
	return map[string]any{"value": s.Value(), "sigma": s.Sigma()}
}
