// Package cable defines cablekit's data model: immutable numeric core
// objects (wire arrays, strips, tubes, insulators, semiconductive layers)
// and the mutable aggregates built from them (conductor and insulator
// groups, components, designs, positions, systems).
//
// Construction discipline (strict):
//   - Convenience constructors and Add operations accept heterogeneous raw
//     input — plain numbers, uncertain numbers, geometric proxies, or a
//     previously built part whose outer radius is inherited — and push it
//     through the validate pipeline before anything else happens.
//   - The numeric core constructors consume only pre-validated,
//     homogeneously-typed records; they never see proxies or mixed kinds.
//   - Every numeric field at every nesting depth of an aggregate shares one
//     kind. Appending a part re-resolves the kind against the aggregate's
//     current kind: if unchanged, the aggregate is mutated in place and
//     returned; if changed, a deep, type-promoted copy is mutated and
//     returned while the original is left untouched. Callers must always
//     use the returned aggregate.
//   - Promotion emits an advisory warning through this package's logger
//     (see Configure, WithLogger, WithPromotionWarnings), because discarding the return
//     value after a promotion silently loses the appended part.
//
// Aliasing and concurrency:
//   - A Part is exclusively owned by at most one group and is stored by
//     value; promotion deep-copies the owned subtree and never rewrites
//     shared memory in place.
//   - Aggregates are ordinary mutable containers and are NOT safe for
//     concurrent mutation; build one aggregate per goroutine or serialize
//     Add calls externally.
//
// Faults: every constructor and Add returns either nil or a fault wrapping
// traits.ErrInvalidArgument / traits.ErrNumericDomain; no partial object is
// ever produced and an aggregate is never left half-appended.
package cable
