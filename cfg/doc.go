// Package cfg models the programs the analyzer runs on: a control-flow
// graph whose locations are opaque string identifiers and whose edges
// carry an optional guard condition plus an ordered list of assignments.
//
// Two locations are designated at construction time: the entry (init) and
// the exit (end). Any location may additionally be marked as a widening
// point; the fixpoint engine applies the domain's widening operator only
// there. Widening-point designation, not visit order, is what bounds the
// iteration.
//
// The graph holds at most one edge per ordered location pair; SetEdge
// replaces silently. Locations and incoming edges are reported in
// insertion order, so analyses over the same program are deterministic.
package cfg
