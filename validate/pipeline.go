// SPDX-License-Identifier: MIT
// Package: cablekit/validate
//
// pipeline.go — sanitize → parse → rule orchestration.
//
// Design contract (strict):
//   - One public orchestrator: Validate(reg, entity, pos, named).
//   - Fail fast: every fault is raised at the earliest stage that can
//     detect it (sanitize > parse > rule) and surfaces unmodified; no stage
//     recovers or degrades.
//   - Wrap once: faults carry "<entity>: <context>" from the raising site;
//     the orchestrator adds nothing.

package validate

import (
	"fmt"

	"github.com/voltlab/cablekit/traits"
)

// faultf mirrors the traits-side wrapping helper so every pipeline stage
// reports "<entity>: <context>: <sentinel>" uniformly.
func faultf(sentinel error, entity, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", entity, fmt.Sprintf(format, args...), sentinel)
}

// Sanitize checks the raw record's arity and presence against the entity's
// trait entry and returns the name→raw-value binding with defaults filled:
//
//   - len(pos) must equal the number of required fields (positional order
//     is the required-field declaration order);
//   - every named argument must be a declared optional field;
//   - absent optional fields receive their declared defaults;
//   - if the radii bundle applies, every radius-bearing argument must pass
//     the entity's raw-radius admissibility predicate.
//
// Any violation raises the invalid-argument fault naming the entity and the
// offending field. Complexity: O(required + optional).
func Sanitize(reg *traits.Registry, entity string, pos []any, named map[string]any) (map[string]any, error) {
	e, err := reg.Lookup(entity)
	if err != nil {
		return nil, err
	}

	if len(pos) != len(e.Required) {
		return nil, faultf(traits.ErrInvalidArgument, entity,
			"want %d positional arguments (%v), got %d", len(e.Required), e.Required, len(pos))
	}

	bound := make(map[string]any, len(e.Required)+len(e.Optional))
	for i, f := range e.Required {
		bound[f] = pos[i]
	}

	// Named arguments: declared optionals only, last declaration wins never
	// applies — a duplicate key cannot exist in a map, and required fields
	// must not be re-supplied by name.
	for name, v := range named {
		ok := false
		for _, o := range e.Optional {
			if o.Name == name {
				ok = true
				break
			}
		}
		if !ok {
			return nil, faultf(traits.ErrInvalidArgument, entity, "unknown optional argument %q", name)
		}
		bound[name] = v
	}

	// Defaults for absent optionals, in declaration order.
	for _, o := range e.Optional {
		if _, present := bound[o.Name]; !present {
			bound[o.Name] = o.Default
		}
	}

	// Raw radius admissibility (plain numbers always pass; proxy/reference
	// types pass only if the entity registered a wider predicate).
	if e.RadiiBundle {
		for _, f := range e.RadiusFields {
			if v, present := bound[f]; present && !e.RadiusAdmissible(v) {
				return nil, faultf(traits.ErrInvalidArgument, entity,
					"raw radius input %T not admitted for field %q", v, f)
			}
		}
	}

	return bound, nil
}

// Validate runs the full pipeline for one entity: sanitize the raw input,
// parse it into the normalized record (the only stage that may resolve
// proxies), then evaluate the entity's deterministic rule bundle. On
// success the returned record is ready for kind resolution and the numeric
// core constructor; on failure the first fault in pipeline order is
// returned and nothing was constructed.
func Validate(reg *traits.Registry, entity string, pos []any, named map[string]any) (traits.Record, error) {
	bound, err := Sanitize(reg, entity, pos, named)
	if err != nil {
		return traits.Record{}, err
	}

	e, err := reg.Lookup(entity)
	if err != nil {
		return traits.Record{}, err
	}

	rec, err := e.Parse(entity, bound)
	if err != nil {
		return traits.Record{}, err
	}

	if err = reg.Run(entity, rec); err != nil {
		return traits.Record{}, err
	}

	return rec, nil
}
