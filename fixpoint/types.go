// Package: fixpoint
//
// This file declares the Domain contract, the engine options and result,
// and the sentinel errors.

package fixpoint

import (
	"errors"

	"github.com/sanedra/absint/diag"
	"github.com/sanedra/absint/expr"
)

// Sentinel errors returned by Analyze.
var (
	// ErrNilCFG indicates a nil program graph.
	ErrNilCFG = errors.New("fixpoint: cfg is nil")

	// ErrNilDomain indicates a nil domain.
	ErrNilDomain = errors.New("fixpoint: domain is nil")

	// ErrBadWarmup indicates a negative warm-up threshold.
	ErrBadWarmup = errors.New("fixpoint: warm-up must be non-negative")

	// ErrBadIterationCap indicates a negative iteration cap.
	ErrBadIterationCap = errors.New("fixpoint: iteration cap must be non-negative")

	// ErrNonTerminating indicates the iteration cap was reached before a
	// post-fixpoint. The partial values are still returned.
	ErrNonTerminating = errors.New("fixpoint: iteration cap reached without post-fixpoint")
)

// Domain is the contract a lattice must satisfy to drive the engine.
// E is the element type; elements are treated as immutable values.
type Domain[E any] interface {
	// Join returns the least upper bound of two elements.
	Join(e1, e2 E) E

	// Widen extrapolates next along old; applied only at widening points.
	Widen(old, next E) E

	// Order reports e1 ⊑ e2.
	Order(e1, e2 E) bool

	// Assign returns the strongest postcondition of the assignment.
	// Errors are fatal domain misuse.
	Assign(e E, as expr.Assignment) (E, error)

	// Assume returns the strongest postcondition of the guard.
	// Errors are fatal domain misuse.
	Assume(e E, g expr.Guard) (E, error)

	// Drain hands out diagnostics recorded since the previous drain.
	Drain() []diag.Diagnostic
}

// Options configures the engine.
//
//	Warmup        - rounds to run before widening kicks in.
//	MaxIterations - hard cap on rounds; 0 disables the cap.
type Options struct {
	Warmup        int
	MaxIterations int
}

// DefaultOptions returns the engine defaults.
//
//	Warmup:        5   // a few precise rounds before extrapolating
//	MaxIterations: 0   // rely on widening for termination
func DefaultOptions() Options {
	return Options{
		Warmup:        5,
		MaxIterations: 0,
	}
}

// Validate checks the option combination.
func (o *Options) Validate() error {
	if o.Warmup < 0 {
		return ErrBadWarmup
	}
	if o.MaxIterations < 0 {
		return ErrBadIterationCap
	}

	return nil
}

// Option is a functional option for Analyze.
type Option func(*Options)

// WithWarmup sets the number of rounds before widening kicks in.
func WithWarmup(rounds int) Option {
	return func(o *Options) { o.Warmup = rounds }
}

// WithMaxIterations caps the number of rounds; exceeding the cap makes
// Analyze return ErrNonTerminating alongside the partial result.
func WithMaxIterations(rounds int) Option {
	return func(o *Options) { o.MaxIterations = rounds }
}

// Result carries the analysis outcome.
type Result[E any] struct {
	// Values maps every location to its final abstract element.
	Values map[string]E

	// Iterations is the number of rounds executed.
	Iterations int

	// Diagnostics are the program-level findings, stamped with the
	// location they were observed at, in emission order.
	Diagnostics []diag.Diagnostic
}
