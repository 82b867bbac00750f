// SPDX-License-Identifier: MIT
// Package: cablekit/traits
//
// errors.go — sentinel faults shared by the whole validation pipeline.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Every raising site attaches entity and field context via %w wrapping.
//   • Rule evaluation MUST NOT panic at runtime; validation panics are
//     confined to registration-time constructors (Expr with a bad program,
//     Register with a malformed entry).

package traits

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the logical fault kind: wrong arity, missing
// required field, wrong kind/capability for a value, a raw radius input not
// admitted for the entity type, an ordering violation (Less/LessEq), or an
// unregistered entity type.
// Usage: if errors.Is(err, traits.ErrInvalidArgument) { /* caller bug */ }.
var ErrInvalidArgument = errors.New("traits: invalid argument")

// ErrNumericDomain is the numeric fault kind: a normalized value is
// non-finite, negative where non-negativity is required, non-positive where
// strict positivity is required, or non-integral where an integer is
// required.
// Usage: if errors.Is(err, traits.ErrNumericDomain) { /* bad data */ }.
var ErrNumericDomain = errors.New("traits: numeric domain violation")

// ErrUnknownEntity indicates a lookup for an entity type that was never
// registered. It wraps ErrInvalidArgument so callers can branch on either.
var ErrUnknownEntity = fmt.Errorf("unknown entity type: %w", ErrInvalidArgument)

// faultf wraps a sentinel with "<entity>: <formatted context>" exactly once
// at the raising site; outer layers add no further prefixes.
func faultf(sentinel error, entity, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", entity, fmt.Sprintf(format, args...), sentinel)
}
