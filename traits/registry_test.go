package traits_test

import (
	"errors"
	"testing"

	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
)

// passParse is a minimal ParseFunc for registry-level tests.
func passParse(_ string, bound map[string]any) (traits.Record, error) {
	rec := traits.NewRecord()
	for name, v := range bound {
		if s, ok := v.(num.Scalar); ok {
			rec.Scalars[name] = s
		}
	}
	return rec, nil
}

//----------------------------------------------------------------------------//
// Registration invariants
//----------------------------------------------------------------------------//

// TestRegister_PanicsOnMalformedEntries: registration-time programmer errors
// must panic, never surface as runtime faults.
func TestRegister_PanicsOnMalformedEntries(t *testing.T) {
	cases := []struct {
		name   string
		entity string
		entry  traits.Entry
	}{
		{"EmptyName", "", traits.Entry{Parse: passParse}},
		{"NilParse", "tube", traits.Entry{}},
		{
			"RequiredOptionalOverlap", "tube",
			traits.Entry{
				Required: []string{"r_in"},
				Optional: []traits.OptionalField{{Name: "r_in", Default: 0.0}},
				Parse:    passParse,
			},
		},
		{
			"UndeclaredRadiusField", "tube",
			traits.Entry{
				Required:     []string{"r_in"},
				RadiusFields: []string{"r_ext"},
				Parse:        passParse,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("Register must panic on malformed entry")
				}
			}()
			traits.NewRegistry().Register(tc.entity, tc.entry)
		})
	}
}

// TestLookup_UnknownEntity maps to the invalid-argument fault kind.
func TestLookup_UnknownEntity(t *testing.T) {
	reg := traits.NewRegistry()
	_, err := reg.Lookup("hologram")
	if !errors.Is(err, traits.ErrUnknownEntity) {
		t.Errorf("Lookup(unknown) = %v; want ErrUnknownEntity", err)
	}
	if !errors.Is(err, traits.ErrInvalidArgument) {
		t.Errorf("ErrUnknownEntity must wrap ErrInvalidArgument, got %v", err)
	}
}

// TestRegister_ReplacementInvalidatesBundle: re-registering an entity must
// rebuild its rule bundle, never append to it.
func TestRegister_ReplacementInvalidatesBundle(t *testing.T) {
	reg := traits.NewRegistry()
	entry := traits.Entry{
		Required: []string{traits.FieldRIn, traits.FieldRExt},
		Extra:    []traits.Rule{traits.Positive(traits.FieldRExt)},
		Parse:    passParse,
	}
	entry.RadiiBundle = true
	reg.Register("tube", entry)

	first, err := reg.RulesFor("tube")
	if err != nil {
		t.Fatalf("RulesFor error: %v", err)
	}

	// Declare the same entity again, identically.
	reg.Register("tube", entry)
	second, err := reg.RulesFor("tube")
	if err != nil {
		t.Fatalf("RulesFor error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("duplicate registration changed bundle length: %d vs %d", len(first), len(second))
	}
}

// TestDefaultRadiusAdmissible admits plain numerics only.
func TestDefaultRadiusAdmissible(t *testing.T) {
	admitted := []any{num.P(1), num.U(1, 0.1), 1.5, 3}
	for _, v := range admitted {
		if !traits.DefaultRadiusAdmissible(v) {
			t.Errorf("DefaultRadiusAdmissible(%v) = false; want true", v)
		}
	}
	rejected := []any{"0.01", nil, []float64{1}}
	for _, v := range rejected {
		if traits.DefaultRadiusAdmissible(v) {
			t.Errorf("DefaultRadiusAdmissible(%v) = true; want false", v)
		}
	}
}
