// Package: boxes
//
// Purpose:
//   - The landmark widening operator.
//
// Contract:
//   - Widen(old, next) extends next wherever a bound escaped old: a
//     decreased lower bound drops to the largest landmark strictly below
//     it (else the declared minimum), an increased upper bound rises to
//     the smallest landmark strictly above it (else the declared maximum).
//   - Widen is NOT a join; callers apply it only at designated widening
//     points. With a finite landmark set every per-variable chain of
//     widened bounds is strictly shortening, which is what terminates the
//     fixpoint iteration.

package boxes

// Widen returns the widened successor of old along next.
// If either argument is bottom the result is a copy of the other.
func (f *Factory) Widen(old, next Element) Element {
	if old.bot {
		return Element{entries: copyEntries(next.entries), bot: next.bot}
	}
	if next.bot {
		return Element{entries: copyEntries(old.entries)}
	}

	result := copyEntries(next.entries)

	// Variables constrained only in next keep their next entry: old holds
	// them at the declared range there, so no bound can have escaped it.
	for name, ivOld := range old.entries {
		ivNew, err := f.intervalOf(next, name)
		if err != nil {
			continue // entry for an undeclared variable cannot occur
		}

		lo := ivNew.Lo
		hi := ivNew.Hi
		top := f.vars[name]

		if ivOld.Lo > ivNew.Lo {
			// Lower bound escaped downward: largest landmark strictly
			// below the new bound, else the declared minimum.
			lm, found := f.landmarkBelow(ivNew.Lo)
			if found {
				lo = lm
			} else {
				lo = top.Lo
			}
		}
		if ivNew.Hi > ivOld.Hi {
			// Upper bound escaped upward: smallest landmark strictly
			// above the new bound, else the declared maximum.
			lm, found := f.landmarkAbove(ivNew.Hi)
			if found {
				hi = lm
			} else {
				hi = top.Hi
			}
		}

		// Landmarks may lie outside the declared range; the clamp keeps
		// every stored entry inside it. The pair cannot be empty:
		// lo ≤ ivNew.Lo and hi ≥ ivNew.Hi with ivNew inside the range.
		f.putClamped(result, name, lo, hi)
	}

	return f.normalized(result)
}

// landmarkBelow returns the largest landmark strictly less than bound.
// The explicit found flag keeps a landmark of value 0 usable.
func (f *Factory) landmarkBelow(bound int64) (int64, bool) {
	var best int64
	found := false
	for _, c := range f.landmarks { // sorted ascending
		if c >= bound {
			break
		}
		best = c
		found = true
	}

	return best, found
}

// landmarkAbove returns the smallest landmark strictly greater than bound.
func (f *Factory) landmarkAbove(bound int64) (int64, bool) {
	for _, c := range f.landmarks { // sorted ascending
		if c > bound {
			return c, true
		}
	}

	return 0, false
}
