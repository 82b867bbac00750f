// SPDX-License-Identifier: MIT
// Package: cablekit/cable
//
// construct.go — shared plumbing of the convenience constructor surface:
// argument splitting, pipeline invocation, record coercion.
//
// Control flow (strict, identical for every entity):
//   validate (sanitize → parse → rules) → resolve kind → coerce record →
//   numeric core constructor. Faults surface before any mutation.

package cable

import (
	"fmt"

	"github.com/voltlab/cablekit/materials"
	"github.com/voltlab/cablekit/num"
	"github.com/voltlab/cablekit/traits"
	"github.com/voltlab/cablekit/validate"
)

// Args carries the optional named arguments of a convenience constructor,
// e.g. cable.Args{"temperature": 70.0}. It is recognized only as the final
// argument of a constructor or Add call.
type Args map[string]any

// splitArgs separates the positional arguments from a trailing Args value.
func splitArgs(args []any) ([]any, map[string]any) {
	if n := len(args); n > 0 {
		if named, ok := args[n-1].(Args); ok {
			return args[:n-1], named
		}
	}
	return args, nil
}

// validateEntity runs the full pipeline for one raw constructor call and
// returns the normalized record.
func validateEntity(entity string, args []any) (traits.Record, error) {
	pos, named := splitArgs(args)
	return validate.Validate(registry, entity, pos, named)
}

// coerceRecord converts every scalar and every material object of a record
// to the target kind. Records are ephemeral, so this always rewrites in
// place and returns the same record value.
func coerceRecord(rec traits.Record, k num.Kind) traits.Record {
	for name, s := range rec.Scalars {
		rec.Scalars[name] = num.Coerce(s, k)
	}
	for name, o := range rec.Objects {
		if m, ok := o.(materials.Props); ok {
			rec.Objects[name] = m.Coerce(k)
		}
	}
	return rec
}

// faultf mirrors the pipeline's "<entity>: <context>: <sentinel>" wrapping
// for aggregate-level checks (class admission, radial continuity).
func faultf(sentinel error, entity, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", entity, fmt.Sprintf(format, args...), sentinel)
}
