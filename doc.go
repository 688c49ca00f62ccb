// Package absint is a small abstract interpreter for bounding the integer
// variables of imperative programs.
//
// 🚀 What is absint?
//
//	A forward static analyzer that computes, for every control location of a
//	program, a sound over-approximation of the reachable variable valuations:
//
//	  • Box domain: per-variable integer intervals with landmark widening
//	  • CFG model: guarded edges carrying ordered assignment lists
//	  • Fixpoint engine: chaotic iteration with widening after a warm-up
//	  • DBM domain: difference-bound matrices with negative-cycle detection
//	    and all-pairs shortest-path closure
//
// ✨ Why choose absint?
//
//   - Deterministic          — fixed visit orders, reproducible results
//   - Driver-friendly        — programs are built through a tiny CFG API,
//     no textual front-end required
//   - Print-free core        — diagnostics are structured values, tracing
//     goes through commonlog
//
// Everything is organized under flat subpackages:
//
//	interval/   — interval algebra over ℤ
//	expr/       — expressions, guards, assignments + list-form parser
//	boxes/      — the box (interval) abstract domain
//	dbm/        — difference-bound matrices
//	cfg/        — control-flow graphs with widening points
//	fixpoint/   — the forward chaotic-iteration engine
//	diag/       — structured, non-fatal diagnostics
//
// Quick ASCII example, a two-branch join:
//
//	     1
//	    / \
//	   2   3      length:=3 on 1→2, length:=7 on 1→3
//	    \ /
//	     4        length in [3, 7]
//
// See cmd/absint for complete driver programs.
//
//	go get github.com/sanedra/absint
package absint
