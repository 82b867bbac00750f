// SPDX-License-Identifier: MIT
// Package: cablekit/designio
//
// schema.go — the YAML document shape. Field values stay `any` on purpose:
// the importer decodes them into pipeline-admissible raw inputs, and the
// pipeline owns all validation.

package designio

// designDoc is the root of a design document.
type designDoc struct {
	Design designSpec `yaml:"design"`
}

// systemDoc is the root of a system document.
type systemDoc struct {
	System systemSpec `yaml:"system"`
}

// designSpec describes one cable design: named, components core-outwards.
type designSpec struct {
	Name       string          `yaml:"name"`
	Components []componentSpec `yaml:"components"`
}

// componentSpec describes one component: conductive layers inside,
// dielectric layers around them, both inner-to-outer.
type componentSpec struct {
	ID         string      `yaml:"id"`
	Conductor  []layerSpec `yaml:"conductor"`
	Insulation []layerSpec `yaml:"insulation"`
}

// layerSpec is one raw layer: the entity type plus its fields by name.
type layerSpec struct {
	Entity string         `yaml:"entity"`
	With   map[string]any `yaml:"with"`
}

// systemSpec describes a line system: the line length and the positioned
// cables of its cross-section.
type systemSpec struct {
	Name   string         `yaml:"name"`
	Length any            `yaml:"length"`
	Cables []positionSpec `yaml:"cables"`
}

// positionSpec places one design at cross-section coordinates [m].
type positionSpec struct {
	X      any        `yaml:"x"`
	Y      any        `yaml:"y"`
	Design designSpec `yaml:"design"`
}
