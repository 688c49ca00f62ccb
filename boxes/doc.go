// Package boxes implements the box (interval) abstract domain: lattice
// elements mapping program variables to integer intervals, with sound
// abstract transformers for assignments and guard conditions and a widening
// operator driven by user-supplied landmark constants.
//
// Elements and normal form
//
//	An Element is either bottom (the empty set of valuations) or a sparse
//	map from variable name to interval. A variable absent from the map is
//	implicitly bound to its declared range, so the empty map is top. All
//	elements are kept in normal form: no stored entry equals the variable's
//	declared range. Elements are immutable values; every operation returns
//	a fresh one.
//
// The Factory owns the variable descriptors and the landmark set. Declare
// variables up front with AddVar; transformers referencing an undeclared
// variable fail with ErrUnknownVariable rather than guessing a range.
//
// Widening
//
//	Widen is not a join. When a bound escapes between iterates, it is
//	generalized to the nearest landmark beyond it, or to the variable's
//	declared bound when no landmark applies. The fixpoint engine decides
//	where and when to widen; this package only supplies the operator.
//
// Complexity: every operation is linear in the number of stored entries,
// except Widen which additionally scans the sorted landmark slice.
package boxes
