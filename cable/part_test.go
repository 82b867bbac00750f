package cable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voltlab/cablekit/cable"
	"github.com/voltlab/cablekit/num"
)

// scalarFields enumerates every exported scalar of a part by name, so kind
// homogeneity can be asserted field by field.
func scalarFields(p cable.Part) map[string]num.Scalar {
	return map[string]num.Scalar{
		"RIn":            p.RIn,
		"RExt":           p.RExt,
		"Temperature":    p.Temperature,
		"RWire":          p.RWire,
		"NWires":         p.NWires,
		"LayRatio":       p.LayRatio,
		"Width":          p.Width,
		"Thick":          p.Thick,
		"CrossSection":   p.CrossSection,
		"Resistance":     p.Resistance,
		"GMR":            p.GMR,
		"Capacitance":    p.Capacitance,
		"Conductance":    p.Conductance,
		"Material.Rho":   p.Material.Rho,
		"Material.EpsR":  p.Material.EpsR,
		"Material.MuR":   p.Material.MuR,
		"Material.T0":    p.Material.T0,
		"Material.Alpha": p.Material.Alpha,
	}
}

// TestPart_KindHomogeneity: every exported scalar of a part carries the
// part's single kind — including geometry fields the class never declares
// (a tube has no wire radius) and equivalents it never fills (a conductor
// has no capacitance). A single uncertain input must leave no plain field
// behind.
func TestPart_KindHomogeneity(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) cable.Part
		want  num.Kind
	}{
		{
			name: "plain tube",
			build: func(t *testing.T) cable.Part {
				g, err := cable.NewConductorGroup(cable.Tubular, 0.0, 0.01, copper())
				require.NoError(t, err)
				return g.Parts()[0]
			},
			want: num.Plain,
		},
		{
			name: "uncertain tube",
			build: func(t *testing.T) cable.Part {
				g, err := cable.NewConductorGroup(cable.Tubular, 0.0, 0.01, copper(),
					cable.Args{"temperature": num.U(50, 1)})
				require.NoError(t, err)
				return g.Parts()[0]
			},
			want: num.Uncertain,
		},
		{
			name: "uncertain wire layer",
			build: func(t *testing.T) cable.Part {
				g, err := cable.NewConductorGroup(cable.WireArray,
					0.0, num.U(0.002, 1e-5), 7, 12.0, copper())
				require.NoError(t, err)
				return g.Parts()[0]
			},
			want: num.Uncertain,
		},
		{
			name: "uncertain dielectric",
			build: func(t *testing.T) cable.Part {
				g, err := cable.NewInsulatorGroup(cable.Insulator,
					0.01, num.U(0.015, 1e-5), materialXLPE(t))
				require.NoError(t, err)
				return g.Parts()[0]
			},
			want: num.Uncertain,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.build(t)
			require.Equal(t, tc.want, p.NumKind())
			for name, s := range scalarFields(p) {
				require.Equal(t, tc.want, s.NumKind(), "field %s", name)
			}
		})
	}
}
