// Package diag defines the structured, non-fatal diagnostics emitted by
// abstract transformers, and a small Collector that accumulates them.
//
// Diagnostics are values, never printed by the core: a transformer that
// detects a definite or possible division by zero records a Diagnostic and
// carries on (collapsing to bottom in the definite case). The fixpoint
// engine drains the collector after each transfer and stamps the control
// location, so consumers see where in the program the condition arose.
//
// Fatal misuses of the domain API (unknown variables, unknown operators)
// are ordinary Go errors, not diagnostics.
package diag
