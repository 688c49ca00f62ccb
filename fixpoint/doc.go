// Package fixpoint drives the analysis: a forward chaotic iteration that
// folds a domain's abstract transformers over the edges of a CFG until a
// post-fixpoint is reached.
//
// Each round recomputes every location as the join of its incoming
// transfers (guard first, then assignments left to right) with the value
// it already holds, so rounds are monotone even for locations no edge
// targets. After a configurable warm-up, the domain's widening operator
// replaces the recomputed value at every designated widening point; with
// a finite landmark set this bounds the number of rounds.
//
// The engine is domain-generic: anything satisfying Domain[E] can drive
// it. It performs no I/O; per-round tracing goes through commonlog and
// program-level findings (division by zero and friends) are drained from
// the domain after every transfer, stamped with the target location, and
// returned on the Result.
package fixpoint
