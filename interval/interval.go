// Package: interval
//
// Purpose:
//   - Interval type plus the primitive operations: union, intersection,
//     containment, and the arithmetic transformers (addition,
//     subtraction, multiplication, modulo).
//
// Contract:
//   - Every Interval is well-formed (Lo ≤ Hi); New enforces this and the
//     other constructors cannot violate it.
//   - Intersection reports emptiness through its second return value.
//   - Modulo against the singleton {0} divisor is the only failing case.

package interval

import (
	"errors"
	"fmt"
)

// Sentinel errors for interval construction and arithmetic.
var (
	// ErrInverted indicates a constructor received Lo > Hi.
	ErrInverted = errors.New("interval: inverted bounds")

	// ErrDivisionByZero indicates a modulo whose divisor is exactly {0}.
	ErrDivisionByZero = errors.New("interval: division by zero")
)

// Interval is a closed integer interval [Lo, Hi] with Lo ≤ Hi.
type Interval struct {
	// Lo is the inclusive lower bound.
	Lo int64

	// Hi is the inclusive upper bound.
	Hi int64
}

// New returns the interval [lo, hi], or ErrInverted when lo > hi.
func New(lo, hi int64) (Interval, error) {
	if lo > hi {
		return Interval{}, fmt.Errorf("New(%d, %d): %w", lo, hi, ErrInverted)
	}

	return Interval{Lo: lo, Hi: hi}, nil
}

// Point returns the singleton interval [v, v].
func Point(v int64) Interval {
	return Interval{Lo: v, Hi: v}
}

// Union returns the smallest interval containing both a and o.
func (a Interval) Union(o Interval) Interval {
	return Interval{Lo: min(a.Lo, o.Lo), Hi: max(a.Hi, o.Hi)}
}

// Intersect returns the common part of a and b. The second return value is
// false when the intervals are disjoint; the returned Interval is then
// meaningless and must not be used.
func Intersect(a, b Interval) (Interval, bool) {
	lo := max(a.Lo, b.Lo)
	hi := min(a.Hi, b.Hi)
	if lo > hi {
		return Interval{}, false
	}

	return Interval{Lo: lo, Hi: hi}, true
}

// Add returns the interval of sums {x+y : x ∈ a, y ∈ b}.
func (a Interval) Add(b Interval) Interval {
	return Interval{Lo: a.Lo + b.Lo, Hi: a.Hi + b.Hi}
}

// Sub returns the interval of differences {x−y : x ∈ a, y ∈ b},
// i.e. [a.Lo−b.Hi, a.Hi−b.Lo].
func (a Interval) Sub(b Interval) Interval {
	return Interval{Lo: a.Lo - b.Hi, Hi: a.Hi - b.Lo}
}

// Mul returns the interval of products. Because either operand may straddle
// zero, the extrema are found among the four corner products.
func (a Interval) Mul(b Interval) Interval {
	c1 := a.Lo * b.Lo
	c2 := a.Lo * b.Hi
	c3 := a.Hi * b.Lo
	c4 := a.Hi * b.Hi

	return Interval{
		Lo: min(min(c1, c2), min(c3, c4)),
		Hi: max(max(c1, c2), max(c3, c4)),
	}
}

// Mod returns an over-approximation of {x % y : x ∈ a, y ∈ b, y ≠ 0}:
//
//   - b exactly {0}: ErrDivisionByZero.
//   - both singletons: the single value a.Lo % b.Lo.
//   - otherwise, with M = max(|b.Lo|, |b.Hi|) − 1: [0, M] when a.Lo ≥ 0,
//     [−M, M] when a may be negative.
//
// A divisor interval that merely contains 0 is not an error here; deciding
// whether that deserves a diagnostic is the caller's concern (Contains).
func Mod(a, b Interval) (Interval, error) {
	if b.Lo == 0 && b.Hi == 0 {
		return Interval{}, fmt.Errorf("Mod(%s, %s): %w", a, b, ErrDivisionByZero)
	}
	if a.IsSingleton() && b.IsSingleton() {
		return Point(a.Lo % b.Lo), nil
	}

	m := max(abs(b.Lo), abs(b.Hi)) - 1
	if a.Lo >= 0 {
		return Interval{Lo: 0, Hi: m}, nil
	}

	return Interval{Lo: -m, Hi: m}, nil
}

// Contains reports whether the scalar k lies in a.
func (a Interval) Contains(k int64) bool {
	return a.Lo <= k && k <= a.Hi
}

// ContainsInterval reports whether o is entirely inside a.
func (a Interval) ContainsInterval(o Interval) bool {
	return a.Lo <= o.Lo && o.Hi <= a.Hi
}

// IsSingleton reports whether a holds exactly one value.
func (a Interval) IsSingleton() bool {
	return a.Lo == a.Hi
}

// Eq reports whether a and o denote the same set.
func (a Interval) Eq(o Interval) bool {
	return a.Lo == o.Lo && a.Hi == o.Hi
}

// String renders a as "[Lo, Hi]".
func (a Interval) String() string {
	return fmt.Sprintf("[%d, %d]", a.Lo, a.Hi)
}

// abs returns |v| for the bound magnitudes used by Mod.
func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
