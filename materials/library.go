// File: library.go
// Role: canonical built-in material data (nominal IEC values, plain kind).
// Determinism: the table is static; Get returns the same value forever.

package materials

import (
	"sort"

	"github.com/voltlab/cablekit/num"
)

// Canonical library names.
const (
	Copper    = "copper"
	Aluminum  = "aluminum"
	Lead      = "lead"
	Steel     = "steel"
	XLPE      = "xlpe"
	PE        = "pe"
	Semicon   = "semicon"
	AirGap    = "air"
	Polyacryl = "polyacrylate" // water-blocking tape backing
)

// library maps canonical names to nominal properties. Resistivities for
// insulators are bulk values used by the shunt-conductance formula.
var library = map[string]Props{
	Copper:    New(num.P(1.7241e-8), num.P(1.0), num.P(0.999994), num.P(20), num.P(3.93e-3)),
	Aluminum:  New(num.P(2.8264e-8), num.P(1.0), num.P(1.000022), num.P(20), num.P(4.29e-3)),
	Lead:      New(num.P(2.2e-7), num.P(1.0), num.P(1.0), num.P(20), num.P(4.0e-3)),
	Steel:     New(num.P(1.38e-7), num.P(1.0), num.P(300), num.P(20), num.P(4.5e-3)),
	XLPE:      New(num.P(1.97e14), num.P(2.3), num.P(1.0), num.P(20), num.P(0)),
	PE:        New(num.P(1.97e14), num.P(2.25), num.P(1.0), num.P(20), num.P(0)),
	Semicon:   New(num.P(1000), num.P(1000), num.P(1.0), num.P(20), num.P(0)),
	AirGap:    New(num.P(1e30), num.P(1.000649), num.P(1.0), num.P(20), num.P(0)),
	Polyacryl: New(num.P(5.3e3), num.P(32.3), num.P(1.0), num.P(20), num.P(0)),
}

// Get returns the built-in material with the given canonical name.
// The second result is false for unknown names; no fallback material exists.
// Complexity: O(1).
func Get(name string) (Props, bool) {
	p, ok := library[name]
	return p, ok
}

// Names lists the canonical library names in sorted order, for CLI help and
// deterministic documentation output.
// Complexity: O(n log n).
func Names() []string {
	out := make([]string, 0, len(library))
	for n := range library {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
