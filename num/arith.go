// File: arith.go
// Role: Scalar arithmetic with first-order uncertainty propagation.
// Contract (strict):
//   - Result kind = Join(operand kinds); Plain op Plain stays Plain.
//   - Propagation assumes uncorrelated operands: σ² sums in quadrature.
//   - No operation raises; non-finite results surface as non-finite centres
//     and are caught by the Finite rule downstream, never here.

package num

import "math"

// join2 merges the kinds of two operands (internal fast path of Join).
func join2(a, b Kind) Kind {
	if a == Uncertain || b == Uncertain {
		return Uncertain
	}
	return Plain
}

// make binds a computed centre/uncertainty pair to the joined kind,
// keeping the "Plain ⇒ σ=0" invariant branch-free for plain results.
func (s Scalar) make(o Scalar, v, sig float64) Scalar {
	k := join2(s.kind, o.kind)
	if k == Plain {
		return Scalar{val: v}
	}
	return Scalar{val: v, sig: sig, kind: Uncertain}
}

// Add returns s + o; σ = √(σs² + σo²).
func (s Scalar) Add(o Scalar) Scalar {
	return s.make(o, s.val+o.val, math.Hypot(s.sig, o.sig))
}

// Sub returns s − o; σ = √(σs² + σo²).
func (s Scalar) Sub(o Scalar) Scalar {
	return s.make(o, s.val-o.val, math.Hypot(s.sig, o.sig))
}

// Mul returns s·o; σ = √((o·σs)² + (s·σo)²).
func (s Scalar) Mul(o Scalar) Scalar {
	return s.make(o, s.val*o.val, math.Hypot(o.val*s.sig, s.val*o.sig))
}

// Div returns s/o; σ = √((σs/o)² + (s·σo/o²)²).
// Division by a zero centre yields a non-finite centre (IEEE semantics);
// the Finite rule reports it at validation time.
func (s Scalar) Div(o Scalar) Scalar {
	return s.make(o, s.val/o.val, math.Hypot(s.sig/o.val, s.val*o.sig/(o.val*o.val)))
}

// Neg returns −s with the same uncertainty.
func (s Scalar) Neg() Scalar {
	return Scalar{val: -s.val, sig: s.sig, kind: s.kind}
}

// Pow returns s^p for a constant (exact) exponent p;
// σ = |p·s^(p−1)|·σs.
func (s Scalar) Pow(p float64) Scalar {
	v := math.Pow(s.val, p)
	if s.kind == Plain {
		return Scalar{val: v}
	}
	return Scalar{val: v, sig: math.Abs(p*math.Pow(s.val, p-1)) * s.sig, kind: Uncertain}
}

// Sqrt returns √s; σ = σs / (2√s).
func (s Scalar) Sqrt() Scalar {
	v := math.Sqrt(s.val)
	if s.kind == Plain {
		return Scalar{val: v}
	}
	return Scalar{val: v, sig: s.sig / (2 * v), kind: Uncertain}
}

// Ln returns the natural logarithm of s; σ = σs / |s|.
func (s Scalar) Ln() Scalar {
	v := math.Log(s.val)
	if s.kind == Plain {
		return Scalar{val: v}
	}
	return Scalar{val: v, sig: s.sig / math.Abs(s.val), kind: Uncertain}
}

// Exp returns e^s; σ = e^s · σs.
func (s Scalar) Exp() Scalar {
	v := math.Exp(s.val)
	if s.kind == Plain {
		return Scalar{val: v}
	}
	return Scalar{val: v, sig: v * s.sig, kind: Uncertain}
}

// Inv returns 1/s; σ = σs / s².
func (s Scalar) Inv() Scalar {
	if s.kind == Plain {
		return Scalar{val: 1 / s.val}
	}
	return Scalar{val: 1 / s.val, sig: s.sig / (s.val * s.val), kind: Uncertain}
}
