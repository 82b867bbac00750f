// SPDX-License-Identifier: MIT
// Package: cablekit/designio
//
// Package designio reads and writes cable designs and systems as YAML
// documents.
//
// Importing is construction, not deserialization: every layer in the
// document goes through the same sanitize → parse → rule pipeline as the
// in-code constructors, so a document that decodes but violates a rule
// fails with the same invalid-argument or numeric-domain fault the
// constructor would raise. A successfully imported design is therefore
// valid by construction.
//
// Document shape (design):
//
//	design:
//	  name: 66kV-1x240
//	  components:
//	    - id: core
//	      conductor:
//	        - entity: wirearray
//	          with:
//	            r_in: 0
//	            r_wire: 0.002
//	            n_wires: 7
//	            lay_ratio: 12
//	            material: copper
//	      insulation:
//	        - entity: insulator
//	          with:
//	            r_in: inherit
//	            r_ext: {thickness: 0.0025}
//	            material: xlpe
//
// Field values admit the same raw forms as the constructors: plain numbers,
// uncertain numbers ({value: v, sigma: s}), thickness and diameter proxies
// ({thickness: t} / {diameter: d}), the literal string "inherit" for an
// inner radius taken from the layer below, a canonical library name or an
// inline property map for materials.
package designio
