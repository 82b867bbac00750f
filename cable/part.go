// File: part.go
// Role: the immutable numeric core object (Part) and its constructor.
// Identity:
//   - Parts are value types owned by exactly one group; they are copied,
//     never aliased, so promotion can deep-copy a group without disturbing
//     any other aggregate.
// Invariant:
//   - Every scalar field of a Part, including the derived equivalents,
//     carries the Part's single kind; the constructor only accepts records
//     already coerced to that kind.

package cable

import (
	"github.com/voltlab/cablekit/formulas"
	"github.com/voltlab/cablekit/materials"
	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
)

// PartClass discriminates the five numeric core object shapes.
type PartClass uint8

const (
	// ClassWireArray is a circular layer of identical round wires.
	ClassWireArray PartClass = iota
	// ClassStrip is a helically laid rectangular strip.
	ClassStrip
	// ClassTubular is a solid annular conductor.
	ClassTubular
	// ClassInsulator is a coaxial insulating layer.
	ClassInsulator
	// ClassSemicon is a semiconductive screen layer.
	ClassSemicon
)

// classOf maps entity identifiers to part classes.
var classOf = map[string]PartClass{
	WireArray: ClassWireArray,
	Strip:     ClassStrip,
	Tubular:   ClassTubular,
	Insulator: ClassInsulator,
	Semicon:   ClassSemicon,
}

// Part is an immutable cable layer: geometry, material, temperature and the
// derived per-unit-length equivalents of its class. Conductive classes fill
// Resistance/GMR; dielectric classes fill Capacitance/Conductance.
type Part struct {
	Class  PartClass
	Entity string

	RIn         num.Scalar
	RExt        num.Scalar
	Temperature num.Scalar
	Material    materials.Props

	// Class-specific geometry (zero for classes that do not use them).
	RWire    num.Scalar
	NWires   num.Scalar
	LayRatio num.Scalar
	Width    num.Scalar
	Thick    num.Scalar

	// Derived equivalents.
	CrossSection num.Scalar
	Resistance   num.Scalar
	GMR          num.Scalar
	Capacitance  num.Scalar
	Conductance  num.Scalar

	kind num.Kind
}

var (
	_ num.Kinded = Part{}
	// Parts can seed the inner radius of the next layer.
	_ interface{ OuterRadius() num.Scalar } = Part{}
)

// NumKind returns the single kind shared by every field of the part.
func (p Part) NumKind() num.Kind { return p.kind }

// OuterRadius returns the radial outer bound; the validate package inherits
// it when the part is passed as a raw inner-radius argument.
func (p Part) OuterRadius() num.Scalar { return p.RExt }

// RadialExtent returns r_ext − r_in.
func (p Part) RadialExtent() num.Scalar { return p.RExt.Sub(p.RIn) }

// IsConductive reports whether the part carries longitudinal current.
func (p Part) IsConductive() bool {
	return p.Class == ClassWireArray || p.Class == ClassStrip || p.Class == ClassTubular
}

// newPart is the numeric core constructor: it accepts exclusively a
// pre-validated record whose scalars have already been coerced to one kind,
// and computes the class's derived equivalents. It performs no validation
// of its own — the pipeline has run by the time it is called.
//
// Fields the entity does not declare are absent from the record; their zero
// scalars (and the equivalents the class leaves unfilled) are still coerced
// to the part's kind, so every exported field carries exactly one kind.
func newPart(entity string, rec traits.Record, kind num.Kind) Part {
	mat, _ := rec.Objects[fieldMaterial].(materials.Props)
	sc := func(name string) num.Scalar { return num.Coerce(rec.Scalars[name], kind) }
	p := Part{
		Class:       classOf[entity],
		Entity:      entity,
		RIn:         sc(traits.FieldRIn),
		RExt:        sc(traits.FieldRExt),
		Temperature: sc(traits.FieldTemperature),
		Material:    mat,
		RWire:       sc(fieldRWire),
		NWires:      sc(fieldNWires),
		LayRatio:    sc(fieldLayRatio),
		Width:       sc(fieldWidth),
		Thick:       sc(fieldThick),
		kind:        kind,
	}

	m := p.Material
	switch p.Class {
	case ClassWireArray:
		p.CrossSection = formulas.CrossSectionWires(p.NWires, p.RWire)
		p.Resistance = formulas.WireArrayResistance(
			p.RWire, p.NWires, p.LayRatio, m.Rho, m.Alpha, m.T0, p.Temperature)
		// Wire centres sit mid-layer: r_in + r_wire.
		p.GMR = formulas.WireArrayGMR(p.RWire, p.NWires, p.RIn.Add(p.RWire), m.MuR)

	case ClassStrip:
		p.CrossSection = p.Width.Mul(p.Thick)
		rhoT := formulas.TemperatureCorrection(m.Rho, m.Alpha, m.T0, p.Temperature)
		p.Resistance = rhoT.Mul(formulas.HelicalCorrection(p.LayRatio)).Div(p.CrossSection)
		p.GMR = formulas.TubularGMR(p.RIn, p.RExt, m.MuR)

	case ClassTubular:
		p.CrossSection = formulas.CrossSectionAnnulus(p.RIn, p.RExt)
		p.Resistance = formulas.TubularResistance(
			p.RIn, p.RExt, m.Rho, m.Alpha, m.T0, p.Temperature)
		p.GMR = formulas.TubularGMR(p.RIn, p.RExt, m.MuR)

	case ClassInsulator, ClassSemicon:
		p.CrossSection = formulas.CrossSectionAnnulus(p.RIn, p.RExt)
		p.Capacitance = formulas.CoaxialCapacitance(p.RIn, p.RExt, m.EpsR)
		p.Conductance = formulas.ShuntConductance(p.RIn, p.RExt, m.Rho)
	}

	p.CrossSection = num.Coerce(p.CrossSection, kind)
	p.Resistance = num.Coerce(p.Resistance, kind)
	p.GMR = num.Coerce(p.GMR, kind)
	p.Capacitance = num.Coerce(p.Capacitance, kind)
	p.Conductance = num.Coerce(p.Conductance, kind)
	return p
}

// coerce returns the part converted to the target kind; same-kind coercion
// returns the receiver unchanged (value identity).
func (p Part) coerce(k num.Kind) Part {
	if p.kind == k {
		return p
	}
	q := p
	q.RIn = num.Coerce(p.RIn, k)
	q.RExt = num.Coerce(p.RExt, k)
	q.Temperature = num.Coerce(p.Temperature, k)
	q.Material = p.Material.Coerce(k)
	q.RWire = num.Coerce(p.RWire, k)
	q.NWires = num.Coerce(p.NWires, k)
	q.LayRatio = num.Coerce(p.LayRatio, k)
	q.Width = num.Coerce(p.Width, k)
	q.Thick = num.Coerce(p.Thick, k)
	q.CrossSection = num.Coerce(p.CrossSection, k)
	q.Resistance = num.Coerce(p.Resistance, k)
	q.GMR = num.Coerce(p.GMR, k)
	q.Capacitance = num.Coerce(p.Capacitance, k)
	q.Conductance = num.Coerce(p.Conductance, k)
	q.kind = k
	return q
}
