// Package dbm implements difference-bound matrices as weighted directed
// graphs over the extended weight set ℤ ∪ {+∞}.
//
// An edge s -(w)-> t denotes the constraint t − s ≤ w; a missing edge is
// the vacuous constraint with weight +∞. The package provides the two
// classic consistency algorithms:
//
//   - ExistsNegativeCycle: Bellman–Ford from a virtual source, detecting
//     an unsatisfiable constraint system.
//   - ShortestPaths: Floyd–Warshall all-pairs closure, tightening every
//     constraint to its strongest implied form.
//
// Graphs are mutable through the single SetWeight primitive, which keeps
// the incoming and outgoing adjacency indices in lockstep; Clone and
// ShortestPaths return fresh graphs. Node and edge orders are insertion
// orders throughout, so dumps and closures are deterministic.
//
// The DBM domain is exercised standalone; it is not yet wired into the
// fixpoint engine.
package dbm
