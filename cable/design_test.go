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

// buildCore assembles a 7-wire copper core insulated with XLPE, spanning
// [0, 0.0065) m.
func buildCore(t *testing.T) *cable.Component {
	t.Helper()

	cond, err := cable.NewConductorGroup(cable.WireArray, 0.0, 0.002, 7, 12.0, copper())
	require.NoError(t, err)

	ins, err := cable.NewInsulatorGroup(cable.Insulator,
		cond, validate.Thickness{T: num.P(0.0025)}, materialXLPE(t))
	require.NoError(t, err)

	c, err := cable.NewComponent("core", cond, ins)
	require.NoError(t, err)
	return c
}

// buildSheath assembles a lead sheath component starting at rIn.
func buildSheath(t *testing.T, rIn float64) *cable.Component {
	t.Helper()

	lead, ok := materials.Get(materials.Lead)
	require.True(t, ok)

	cond, err := cable.NewConductorGroup(cable.Tubular, rIn, rIn+0.002, lead)
	require.NoError(t, err)

	ins, err := cable.NewInsulatorGroup(cable.Insulator,
		cond, validate.Thickness{T: num.P(0.003)}, materialXLPE(t))
	require.NoError(t, err)

	c, err := cable.NewComponent("sheath", cond, ins)
	require.NoError(t, err)
	return c
}

//----------------------------------------------------------------------------//
// Component
//----------------------------------------------------------------------------//

func TestNewComponent_InsulationMustWrapConductorExactly(t *testing.T) {
	cond, err := cable.NewConductorGroup(cable.Tubular, 0.0, 0.01, copper())
	require.NoError(t, err)

	// Insulation starting inside the conductor is rejected.
	ins, err := cable.NewInsulatorGroup(cable.Insulator, 0.005, 0.012, materialXLPE(t))
	require.NoError(t, err)
	_, err = cable.NewComponent("core", cond, ins)
	require.ErrorIs(t, err, traits.ErrInvalidArgument)

	// So is insulation leaving an implicit gap above the conductor.
	ins, err = cable.NewInsulatorGroup(cable.Insulator, 0.011, 0.014, materialXLPE(t))
	require.NoError(t, err)
	_, err = cable.NewComponent("core", cond, ins)
	require.ErrorIs(t, err, traits.ErrInvalidArgument)

	// Exact seating is accepted.
	ins, err = cable.NewInsulatorGroup(cable.Insulator, cond,
		validate.Thickness{T: num.P(0.003)}, materialXLPE(t))
	require.NoError(t, err)
	_, err = cable.NewComponent("core", cond, ins)
	require.NoError(t, err)
}

func TestNewComponent_KindAlignment(t *testing.T) {
	cond, err := cable.NewConductorGroup(cable.Tubular, 0.0, 0.01, copper(),
		cable.Args{"temperature": num.U(90, 3)})
	require.NoError(t, err)
	require.Equal(t, num.Uncertain, cond.NumKind())

	ins, err := cable.NewInsulatorGroup(cable.Insulator, 0.01, 0.013, materialXLPE(t))
	require.NoError(t, err)
	require.Equal(t, num.Plain, ins.NumKind())

	c, err := cable.NewComponent("core", cond, ins)
	require.NoError(t, err)
	require.Equal(t, num.Uncertain, c.NumKind())
	require.Equal(t, num.Uncertain, c.Insulation().NumKind())

	// The caller's plain group was coerced into a copy, not rewritten.
	require.Equal(t, num.Plain, ins.NumKind())
}

//----------------------------------------------------------------------------//
// Design
//----------------------------------------------------------------------------//

func TestDesign_StacksOutwards(t *testing.T) {
	d, err := cable.NewDesign("66kV-1x630")
	require.NoError(t, err)
	require.NotEmpty(t, d.UID())
	require.Equal(t, 0.0, d.OuterRadius().Value())

	core := buildCore(t)
	d, err = d.AddComponent(core)
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())
	require.Equal(t, core.OuterRadius(), d.OuterRadius())

	sheath := buildSheath(t, core.OuterRadius().Value())
	d, err = d.AddComponent(sheath)
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	require.Equal(t, sheath.OuterRadius(), d.OuterRadius())
}

func TestDesign_NonContiguousComponentRejected(t *testing.T) {
	d, err := cable.NewDesign("bad-stack")
	require.NoError(t, err)

	core := buildCore(t)
	d, err = d.AddComponent(core)
	require.NoError(t, err)

	// A sheath starting well inside the core's outer bound is rejected.
	_, err = d.AddComponent(buildSheath(t, 0.001))
	require.ErrorIs(t, err, traits.ErrInvalidArgument)

	// So is one floating above it: gaps need an explicit air layer.
	_, err = d.AddComponent(buildSheath(t, core.OuterRadius().Value()+0.002))
	require.ErrorIs(t, err, traits.ErrInvalidArgument)
	require.Equal(t, 1, d.Len())
}

func TestDesign_PromotionOnUncertainComponent(t *testing.T) {
	d, err := cable.NewDesign("mixed")
	require.NoError(t, err)

	core := buildCore(t)
	d, err = d.AddComponent(core)
	require.NoError(t, err)
	require.Equal(t, num.Plain, d.NumKind())

	// An uncertain sheath promotes the design to a new object.
	lead, ok := materials.Get(materials.Lead)
	require.True(t, ok)
	rIn := core.OuterRadius().Value()
	cond, err := cable.NewConductorGroup(cable.Tubular, rIn, rIn+0.002, lead,
		cable.Args{"temperature": num.U(65, 1)})
	require.NoError(t, err)
	ins, err := cable.NewInsulatorGroup(cable.Insulator, cond,
		validate.Thickness{T: num.P(0.003)}, materialXLPE(t))
	require.NoError(t, err)
	sheath, err := cable.NewComponent("sheath", cond, ins)
	require.NoError(t, err)

	d2, err := d.AddComponent(sheath)
	require.NoError(t, err)
	require.NotSame(t, d, d2)
	require.Equal(t, num.Uncertain, d2.NumKind())
	require.Equal(t, num.Plain, d.NumKind())
	require.Equal(t, 1, d.Len())
	require.Equal(t, d.UID(), d2.UID(), "promotion preserves identity metadata")
}

//----------------------------------------------------------------------------//
// System
//----------------------------------------------------------------------------//

func TestSystem_Positions(t *testing.T) {
	d, err := cable.NewDesign("trefoil")
	require.NoError(t, err)
	d, err = d.AddComponent(buildCore(t))
	require.NoError(t, err)

	s, err := cable.NewSystem("line-1", 1000.0)
	require.NoError(t, err)

	s, err = s.AddPosition(d, 0.0, -1.0)
	require.NoError(t, err)
	s, err = s.AddPosition(d, 0.5, -1.0)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	require.Equal(t, num.Plain, s.NumKind())
	require.Equal(t, 1000.0, s.Length().Value())
}

func TestSystem_RejectsBadLength(t *testing.T) {
	_, err := cable.NewSystem("line", 0.0)
	require.ErrorIs(t, err, traits.ErrNumericDomain)
	_, err = cable.NewSystem("line", -5.0)
	require.ErrorIs(t, err, traits.ErrNumericDomain)
}

func TestSystem_PromotionOnUncertainCoordinate(t *testing.T) {
	d, err := cable.NewDesign("d")
	require.NoError(t, err)
	d, err = d.AddComponent(buildCore(t))
	require.NoError(t, err)

	s, err := cable.NewSystem("line", 500.0)
	require.NoError(t, err)

	s2, err := s.AddPosition(d, num.U(0.0, 0.01), -1.2)
	require.NoError(t, err)
	require.NotSame(t, s, s2)
	require.Equal(t, num.Uncertain, s2.NumKind())
	require.Equal(t, num.Uncertain, s2.Length().NumKind())
	require.Equal(t, num.Plain, s.NumKind())
	require.Equal(t, 0, s.Len())

	// The positioned design was coerced into a copy; the original design
	// keeps its plain kind.
	require.Equal(t, num.Uncertain, s2.Positions()[0].Design.NumKind())
	require.Equal(t, num.Plain, d.NumKind())
}
