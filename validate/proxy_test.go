package validate_test

import (
	"errors"
	"testing"

	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
	"github.com/voltlab/cablekit/validate"
)

// ringStub satisfies InnerRadiusSource for resolver tests.
type ringStub struct{ rExt num.Scalar }

func (r ringStub) OuterRadius() num.Scalar { return r.rExt }

// TestResolveInnerRadius covers numeric, diameter and inherit-from-part
// inputs plus the unsupported-type fault.
func TestResolveInnerRadius(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
		fail bool
	}{
		{"Float", 0.01, 0.01, false},
		{"Int", 2, 2, false},
		{"Scalar", num.U(0.01, 0.001), 0.01, false},
		{"Diameter", validate.Diameter{D: num.P(0.04)}, 0.02, false},
		{"InheritFromPart", ringStub{rExt: num.P(0.03)}, 0.03, false},
		{"String", "0.01", 0, true},
		{"Nil", nil, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validate.ResolveInnerRadius("tube", tc.in)
			if tc.fail {
				if !errors.Is(err, traits.ErrInvalidArgument) {
					t.Fatalf("error = %v; want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Value() != tc.want {
				t.Errorf("resolved %g; want %g", got.Value(), tc.want)
			}
		})
	}
}

// TestResolveOuterRadius: thickness adds onto the resolved inner radius and
// keeps uncertainty flowing through the sum.
func TestResolveOuterRadius(t *testing.T) {
	rIn := num.U(0.01, 0.0005)

	got, err := validate.ResolveOuterRadius("tube", validate.Thickness{T: num.U(0.005, 0.0002)}, rIn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.NumKind() != num.Uncertain {
		t.Error("thickness over uncertain inner radius must stay uncertain")
	}
	if d := got.Value() - 0.015; d > 1e-15 || d < -1e-15 {
		t.Errorf("resolved %g; want 0.015", got.Value())
	}

	if _, err = validate.ResolveOuterRadius("tube", struct{}{}, rIn); !errors.Is(err, traits.ErrInvalidArgument) {
		t.Errorf("unsupported outer radius input: error = %v; want ErrInvalidArgument", err)
	}
}

// TestAdmitRadiusProxies widens the default predicate without weakening it.
func TestAdmitRadiusProxies(t *testing.T) {
	admitted := []any{
		0.01, 3, num.P(1), num.U(1, 0.1),
		validate.Thickness{T: num.P(0.01)},
		validate.Diameter{D: num.P(0.02)},
		ringStub{rExt: num.P(0.03)},
	}
	for _, v := range admitted {
		if !validate.AdmitRadiusProxies(v) {
			t.Errorf("AdmitRadiusProxies(%T) = false; want true", v)
		}
	}
	if validate.AdmitRadiusProxies("0.01") {
		t.Error("AdmitRadiusProxies(string) = true; want false")
	}
}
