// Package: dbm
//
// Purpose:
//   - The extended weight ℤ ∪ {+∞} with the two operations the closure
//     algorithms need: absorbing addition and identity-respecting minimum.

package dbm

import "fmt"

// Weight is an element of ℤ ∪ {+∞}. The zero value is the finite 0;
// use Inf for the infinite weight.
type Weight struct {
	v   int64
	inf bool
}

// Inf is the infinite weight: the absent edge, the vacuous constraint.
var Inf = Weight{inf: true}

// Finite returns the finite weight v.
func Finite(v int64) Weight {
	return Weight{v: v}
}

// IsInf reports whether w is +∞.
func (w Weight) IsInf() bool { return w.inf }

// Value returns the finite value and true, or 0 and false for +∞.
func (w Weight) Value() (int64, bool) {
	if w.inf {
		return 0, false
	}

	return w.v, true
}

// Add returns w + o with +∞ absorbing.
func (w Weight) Add(o Weight) Weight {
	if w.inf || o.inf {
		return Inf
	}

	return Weight{v: w.v + o.v}
}

// Less reports w < o; +∞ is the maximum, never less than anything.
func (w Weight) Less(o Weight) bool {
	if w.inf {
		return false
	}
	if o.inf {
		return true
	}

	return w.v < o.v
}

// MinWeight returns the smaller of a and b, with +∞ as identity.
func MinWeight(a, b Weight) Weight {
	if b.Less(a) {
		return b
	}

	return a
}

// String renders the finite value, or "+inf".
func (w Weight) String() string {
	if w.inf {
		return "+inf"
	}

	return fmt.Sprintf("%d", w.v)
}
