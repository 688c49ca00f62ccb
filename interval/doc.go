// Package interval provides closed integer intervals and the primitive
// arithmetic the box abstract domain is built from.
//
// An Interval [Lo, Hi] denotes the set {k ∈ ℤ : Lo ≤ k ≤ Hi}. The empty set
// is not representable as an Interval value; operations that may produce it
// (Intersect, Mod against a {0} divisor) report that outcome separately, and
// the enclosing lattice carries emptiness as its bottom element.
//
// All operations are total over well-formed inputs, allocate nothing, and
// treat intervals as immutable values.
package interval
