// Package traits is the declarative heart of cablekit's validated
// construction: one registry entry per entity type drives sanitation,
// parsing and rule evaluation for every constructor in the data model.
//
// 🧩 What lives here?
//
//	• Rule      — closed tagged variant of per-field predicates
//	              (Normalized, Finite, Nonneg, Positive, IntegerField,
//	               Less, LessEq, IsA, Expr)
//	• Entry     — per-entity declarative configuration: required fields,
//	              optional fields with defaults, radii/temperature bundles,
//	              raw-radius admissibility, extra rules, parse function
//	• Registry  — explicit registration table (no global mutable dispatch;
//	              entity behavior is injected by a startup Register call,
//	              never by re-opened functions)
//	• RulesFor  — deterministic, cached expansion of an entry into the
//	              ordered rule bundle
//	• Apply     — evaluation of one rule against a normalized record
//
// Determinism contract (strict):
//   - RulesFor(entity) returns the identical ordered sequence across calls
//     and process runs: radii bundle first (fixed order), then the
//     temperature bundle, then extra rules verbatim in declared order.
//   - Re-registering an entity replaces its entry wholesale; rule bundles
//     are rebuilt, never appended to, so duplicate declarations cannot
//     duplicate rules.
//
// Fault taxonomy (the only two fault kinds in the whole pipeline):
//   - ErrInvalidArgument — arity/presence/kind/ordering violations
//   - ErrNumericDomain   — a normalized value outside its numeric domain
//
// Both are sentinels; branch with errors.Is, never with string matching.
package traits
