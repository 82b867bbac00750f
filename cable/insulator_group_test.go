package cable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voltlab/cablekit/cable"
	"github.com/voltlab/cablekit/materials"
	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
	"github.com/voltlab/cablekit/validate"
)

func TestNewInsulatorGroup_Basic(t *testing.T) {
	g, err := cable.NewInsulatorGroup(cable.Insulator, 0.01, 0.015, materialXLPE(t))
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())
	require.Equal(t, num.Plain, g.NumKind())
	require.Greater(t, g.Capacitance().Value(), 0.0)
	require.Greater(t, g.Conductance().Value(), 0.0)
}

func TestNewInsulatorGroup_ConductiveRejected(t *testing.T) {
	_, err := cable.NewInsulatorGroup(cable.Tubular, 0.01, 0.015, copper())
	require.ErrorIs(t, err, traits.ErrInvalidArgument)
}

// TestInsulatorAdd_SeriesCapacitanceDecreases: dielectrics stack in
// series, so the equivalent capacitance can only go down.
func TestInsulatorAdd_SeriesCapacitanceDecreases(t *testing.T) {
	g, err := cable.NewInsulatorGroup(cable.Insulator, 0.01, 0.015, materialXLPE(t))
	require.NoError(t, err)
	single := g.Capacitance().Value()

	g, err = g.Add(cable.Semicon, g, validate.Thickness{T: num.P(0.001)}, semicon(t))
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())
	require.Less(t, g.Capacitance().Value(), single)
	require.InDelta(t, 0.016, g.OuterRadius().Value(), 1e-15)
}

func semicon(t *testing.T) any {
	t.Helper()
	m, ok := materials.Get(materials.Semicon)
	require.True(t, ok)
	return m
}

// TestInsulatorAdd_ImplicitGapRejected: dielectric layers must also sit
// exactly on the group's outer bound; a stray gap or an undercut faults
// and leaves the group untouched.
func TestInsulatorAdd_ImplicitGapRejected(t *testing.T) {
	g, err := cable.NewInsulatorGroup(cable.Insulator, 0.01, 0.015, materialXLPE(t))
	require.NoError(t, err)

	_, err = g.Add(cable.Insulator, 0.016, 0.018, materialXLPE(t))
	require.ErrorIs(t, err, traits.ErrInvalidArgument)

	_, err = g.Add(cable.Insulator, 0.014, 0.018, materialXLPE(t))
	require.ErrorIs(t, err, traits.ErrInvalidArgument)

	require.Equal(t, 1, g.Len())
	require.Equal(t, 0.015, g.OuterRadius().Value())
}

// TestInsulatorAdd_Promotion: an uncertain thickness promotes the group to
// a fresh object and leaves the original plain.
func TestInsulatorAdd_Promotion(t *testing.T) {
	g, err := cable.NewInsulatorGroup(cable.Insulator, 0.01, 0.015, materialXLPE(t))
	require.NoError(t, err)

	g2, err := g.Add(cable.Insulator, g, validate.Thickness{T: num.U(0.002, 1e-4)}, materialXLPE(t))
	require.NoError(t, err)
	require.NotSame(t, g, g2)
	require.Equal(t, num.Uncertain, g2.NumKind())
	require.Equal(t, num.Plain, g.NumKind())
	require.Equal(t, 1, g.Len())
}

func TestInsulatorCoerce_Identity(t *testing.T) {
	g, err := cable.NewInsulatorGroup(cable.Insulator, 0.01, 0.015, materialXLPE(t))
	require.NoError(t, err)
	require.Same(t, g, g.Coerce(num.Plain))
	require.NotSame(t, g, g.Coerce(num.Uncertain))
}
