// File: resolve.go
// Role: Kind resolution across heterogeneous candidates and scalar coercion.
// Determinism:
//   - Join/ResolveKind are pure folds; candidate order never changes the result.
// Identity:
//   - Coerce(s, s.NumKind()) returns s unchanged (bit-for-bit): the no-op
//     leg of the promotion identity law starts here at the leaf level.

package num

// Join folds any number of kinds into the single representation all of the
// corresponding values must share: Uncertain if any operand is Uncertain,
// Plain otherwise.
// Complexity: O(len(kinds)).
func Join(kinds ...Kind) Kind {
	for _, k := range kinds {
		if k == Uncertain {
			return Uncertain
		}
	}
	return Plain
}

// ResolveKind inspects a heterogeneous candidate set and returns the kind
// every candidate must be coerced to. Candidates may be:
//
//   - Scalar            — contributes its own kind;
//   - Kinded            — materials, parts, whole aggregates; contributes
//     the kind shared by every transitively owned numeric field;
//   - float64 / int     — raw plain numbers (contribute Plain);
//   - anything else     — kind-neutral (contributes nothing).
//
// A single Uncertain leaf anywhere forces Uncertain for the whole set; this
// is the monotonicity the promotion machinery relies on.
// Complexity: O(number of candidates); Kinded implementations report their
// cached kind in O(1).
func ResolveKind(vals ...any) Kind {
	for _, v := range vals {
		switch x := v.(type) {
		case Scalar:
			if x.kind == Uncertain {
				return Uncertain
			}
		case Kinded:
			if x.NumKind() == Uncertain {
				return Uncertain
			}
		}
	}
	return Plain
}

// Coerce converts a scalar to the target kind.
//
//   - Same kind: the scalar is returned unchanged (identity-preserving).
//   - Plain → Uncertain: the centre is kept and σ becomes 0; the value is
//     now tracked, it just happens to be exact so far.
//   - Uncertain → Plain: the uncertainty is discarded. Resolution never
//     requests this direction; it exists only for explicit demotion.
//
// Complexity: O(1).
func Coerce(s Scalar, k Kind) Scalar {
	if s.kind == k {
		return s
	}
	if k == Uncertain {
		return Scalar{val: s.val, sig: s.sig, kind: Uncertain}
	}
	return Scalar{val: s.val}
}
