package cable_test

import (
	"fmt"

	"github.com/voltlab/cablekit/cable"
	"github.com/voltlab/cablekit/materials"
	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/validate"
)

// Example builds a single-core cable: a 7-wire copper core, an XLPE wall,
// and a lead sheath, stacked outwards layer by layer.
func Example() {
	cu, _ := materials.Get(materials.Copper)
	pb, _ := materials.Get(materials.Lead)
	ins, _ := materials.Get(materials.XLPE)

	// Core conductor: 7 round copper wires of 2 mm radius around the axis.
	cond, err := cable.NewConductorGroup(cable.WireArray, 0.0, 0.002, 7, 12.0, cu)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Insulation wall: 2.5 mm of XLPE directly on the conductor.
	wall, err := cable.NewInsulatorGroup(cable.Insulator,
		cond, validate.Thickness{T: num.P(0.0025)}, ins)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	core, err := cable.NewComponent("core", cond, wall)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := cable.NewDesign("66kV-1x240")
	d, err = d.AddComponent(core)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Sheath: a lead tube sitting on the insulation, with its own jacket.
	shCond, _ := cable.NewConductorGroup(cable.Tubular,
		d.OuterRadius().Value(), d.OuterRadius().Value()+0.002, pb)
	shIns, _ := cable.NewInsulatorGroup(cable.Insulator,
		shCond, validate.Thickness{T: num.P(0.003)}, ins)
	sheath, _ := cable.NewComponent("sheath", shCond, shIns)

	d, err = d.AddComponent(sheath)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("components: %d\n", d.Len())
	fmt.Printf("kind: %s\n", d.NumKind())
	fmt.Printf("outer radius: %.4f m\n", d.OuterRadius().Value())
	// Output:
	// components: 2
	// kind: plain
	// outer radius: 0.0115 m
}
