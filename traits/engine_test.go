package traits_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
)

// tubeRegistry builds a registry with one radii+temperature entity and a
// "material" capability, mirroring how the cable package registers types.
func tubeRegistry(extra ...traits.Rule) *traits.Registry {
	reg := traits.NewRegistry()
	reg.RegisterCapability("material", func(v any) bool {
		_, ok := v.(string) // stand-in capability for engine tests
		return ok
	})
	reg.Register("tube", traits.Entry{
		RadiiBundle:       true,
		TemperatureBundle: true,
		Required:          []string{traits.FieldRIn, traits.FieldRExt, "material"},
		Optional:          []traits.OptionalField{{Name: traits.FieldTemperature, Default: 20.0}},
		RadiusFields:      []string{traits.FieldRIn, traits.FieldRExt},
		Extra:             extra,
		Parse:             passParse,
	})
	return reg
}

// tubeRecord returns a fully valid normalized record.
func tubeRecord(rIn, rExt, temp num.Scalar) traits.Record {
	rec := traits.NewRecord()
	rec.Scalars[traits.FieldRIn] = rIn
	rec.Scalars[traits.FieldRExt] = rExt
	rec.Scalars[traits.FieldTemperature] = temp
	rec.Objects["material"] = "copper"
	return rec
}

//----------------------------------------------------------------------------//
// Determinism and ordering
//----------------------------------------------------------------------------//

// TestRulesFor_Deterministic: repeated calls yield the identical ordered
// sequence, with the radii bundle in its fixed order, then temperature,
// then extras verbatim.
func TestRulesFor_Deterministic(t *testing.T) {
	reg := tubeRegistry(traits.IsA("material", "material"), traits.Positive(traits.FieldRExt))

	want := []string{
		"normalized(r_in)",
		"normalized(r_ext)",
		"finite(r_in)",
		"nonneg(r_in)",
		"finite(r_ext)",
		"nonneg(r_ext)",
		"r_in < r_ext",
		"finite(temperature)",
		"isa(material, material)",
		"positive(r_ext)",
	}

	for run := 0; run < 3; run++ {
		bundle, err := reg.RulesFor("tube")
		require.NoError(t, err)
		require.Len(t, bundle, len(want))
		for i, r := range bundle {
			require.Equal(t, want[i], r.String(), "rule %d on run %d", i, run)
		}
	}
}

// TestRun_FirstViolationWins: with several violated rules, the first one in
// the declared order is always the one reported.
func TestRun_FirstViolationWins(t *testing.T) {
	reg := tubeRegistry()
	// r_in negative AND r_in ≥ r_ext: nonneg(r_in) precedes the ordering
	// rule, so the numeric-domain fault must win.
	rec := tubeRecord(num.P(-2), num.P(-3), num.P(20))
	err := reg.Run("tube", rec)
	require.ErrorIs(t, err, traits.ErrNumericDomain)
	require.NotErrorIs(t, err, traits.ErrInvalidArgument)
}

//----------------------------------------------------------------------------//
// Fault mapping per rule class
//----------------------------------------------------------------------------//

// TestApply_FaultKinds drives each rule class through pass and fail cases
// and checks the sentinel it wraps on failure.
func TestApply_FaultKinds(t *testing.T) {
	reg := tubeRegistry()
	good := tubeRecord(num.P(0.01), num.P(0.02), num.P(20))

	cases := []struct {
		name string
		rule traits.Rule
		rec  traits.Record
		want error // nil → must pass
	}{
		{"NormalizedPass", traits.Normalized(traits.FieldRIn), good, nil},
		{"NormalizedMissing", traits.Normalized("width"), good, traits.ErrInvalidArgument},
		{"FinitePass", traits.Finite(traits.FieldRIn), good, nil},
		{"FiniteInf", traits.Finite(traits.FieldRExt), tubeRecord(num.P(0.01), num.P(math.Inf(1)), num.P(20)), traits.ErrNumericDomain},
		{"FiniteNaN", traits.Finite(traits.FieldRExt), tubeRecord(num.P(0.01), num.P(math.NaN()), num.P(20)), traits.ErrNumericDomain},
		{"NonnegZeroPasses", traits.Nonneg(traits.FieldRIn), tubeRecord(num.P(0), num.P(0.02), num.P(20)), nil},
		{"NonnegNegative", traits.Nonneg(traits.FieldRIn), tubeRecord(num.P(-1), num.P(0.02), num.P(20)), traits.ErrNumericDomain},
		{"PositiveZeroFails", traits.Positive(traits.FieldRIn), tubeRecord(num.P(0), num.P(0.02), num.P(20)), traits.ErrNumericDomain},
		{"IntegerPass", traits.IntegerField(traits.FieldTemperature), good, nil},
		{"IntegerFraction", traits.IntegerField(traits.FieldRIn), good, traits.ErrNumericDomain},
		{"LessPass", traits.Less(traits.FieldRIn, traits.FieldRExt), good, nil},
		{"LessInverted", traits.Less(traits.FieldRIn, traits.FieldRExt), tubeRecord(num.P(0.02), num.P(0.01), num.P(20)), traits.ErrInvalidArgument},
		{"LessEqualFails", traits.Less(traits.FieldRIn, traits.FieldRExt), tubeRecord(num.P(0.02), num.P(0.02), num.P(20)), traits.ErrInvalidArgument},
		{"LessEqEqualPasses", traits.LessEq(traits.FieldRIn, traits.FieldRExt), tubeRecord(num.P(0.02), num.P(0.02), num.P(20)), nil},
		{"IsAPass", traits.IsA("material", "material"), good, nil},
		{"IsAUnknownCapability", traits.IsA("superconductor", "material"), good, traits.ErrInvalidArgument},
		{"ExprPass", traits.Expr("r_in * 2 <= r_ext"), good, nil},
		{"ExprViolated", traits.Expr("r_ext > 1"), good, traits.ErrNumericDomain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := reg.Apply(tc.rule, tc.rec, "tube")
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestApply_IsAWrongValue: a record whose material slot holds a value that
// fails the capability predicate raises invalid-argument.
func TestApply_IsAWrongValue(t *testing.T) {
	reg := tubeRegistry()
	rec := tubeRecord(num.P(0.01), num.P(0.02), num.P(20))
	rec.Objects["material"] = 42 // not a string → capability fails
	err := reg.Apply(traits.IsA("material", "material"), rec, "tube")
	if !errors.Is(err, traits.ErrInvalidArgument) {
		t.Errorf("IsA on wrong value = %v; want ErrInvalidArgument", err)
	}
}

// TestExpr_PanicsOnBadProgram: malformed sources are registration-time
// programmer errors.
func TestExpr_PanicsOnBadProgram(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expr must panic on a malformed program")
		}
	}()
	_ = traits.Expr("r_in <")
}

// TestRecord_Kind: one uncertain scalar or one uncertain material forces
// the uncertain kind.
func TestRecord_Kind(t *testing.T) {
	rec := tubeRecord(num.P(0.01), num.P(0.02), num.P(20))
	require.Equal(t, num.Plain, rec.Kind())

	rec.Scalars[traits.FieldTemperature] = num.U(20, 2)
	require.Equal(t, num.Uncertain, rec.Kind())

	rec = tubeRecord(num.P(0.01), num.P(0.02), num.P(20))
	rec.Objects["material"] = num.U(1, 1) // any Kinded object participates
	require.Equal(t, num.Uncertain, rec.Kind())
}
