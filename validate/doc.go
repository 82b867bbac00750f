// Package validate orchestrates cablekit's validation pipeline:
//
//	sanitize → parse → rule evaluation
//
// One public entry point, Validate, runs all three stages for an entity
// type against the raw caller input (ordered positional arguments plus a
// name→value mapping of optional arguments) and returns the normalized
// record, or the first fault in pipeline order. No partial result is ever
// produced: a constructor either receives a fully rule-checked record or
// nothing.
//
// Stage contract (strict):
//   - Sanitize checks arity and presence against the entity's required
//     fields, binds optional arguments and fills defaults, and vets every
//     radius-bearing argument against the entity's raw-radius admissibility
//     predicate. Violations raise the invalid-argument fault.
//   - Parse (registered per entity in traits.Entry) is the ONLY place proxy
//     resolution may occur: thickness-over-inner-radius, diameter-halved,
//     and inherit-from-part inputs become canonical scalars here. Rules and
//     the numeric core never see proxies.
//   - Rule evaluation delegates to traits.Run, which short-circuits on the
//     first violated rule in the entity's deterministic bundle order.
//
// The proxy wrapper types (Thickness, Diameter) and the InnerRadiusSource
// capability live here too, together with the resolver helpers parse
// functions are built from.
package validate
