// Package cablekit builds validated, numerically typed models of
// multi-layer power cables — from single layers to full designs and
// positioned line systems.
//
// 🚀 What is cablekit?
//
//	A library for constructing cable models that are correct by
//	construction:
//		• Declarative validation: every entity type registers its fields,
//		  rule bundles and raw-input admissibility in one trait table
//		• One pipeline: sanitize → parse → rules, fail-fast, before any
//		  object exists
//		• Numeric typing: plain values and uncertain values (value ± sigma)
//		  share one Scalar representation; mixing them promotes the whole
//		  object graph, never silently truncates
//		• Physics built in: per-unit-length resistance, GMR, capacitance
//		  and conductance equivalents maintained on every append
//
// ✨ Why choose cablekit?
//
//   - Invalid models are unrepresentable – faults carry the entity, the
//     field and the violated rule
//   - Uncertainty is first-class – measurement tolerances propagate from
//     raw inputs to aggregate equivalents
//   - Pure constructors – append either mutates in place or returns a
//     promoted copy, and tells you which
//
// Everything is organized under flat subpackages:
//
//	num/       — Kind (plain | uncertain), the Scalar value type, resolve & coerce
//	traits/    — rule variants, the trait registry, the deterministic rule engine
//	validate/  — the sanitize → parse → rules pipeline and raw-input proxies
//	materials/ — material properties and the built-in library
//	formulas/  — the physical-formula layer (resistance, GMR, C, G)
//	cable/     — parts, groups, components, designs and systems
//	designio/  — YAML import/export; importing IS validation
//	cmd/       — the cablekit CLI (check, describe)
//
// Quick ASCII example (single-core cable, radial stack):
//
//	┌ jacket ────────────────┐
//	│ ┌ sheath ────────────┐ │
//	│ │ ┌ insulation ────┐ │ │
//	│ │ │ ┌ conductor ─┐ │ │ │
//	│ │ │ │  7 × wire  │ │ │ │
//	│ │ │ └────────────┘ │ │ │
//	│ │ └────────────────┘ │ │
//	│ └────────────────────┘ │
//	└────────────────────────┘
//
//	go get github.com/voltlab/cablekit
package cablekit
