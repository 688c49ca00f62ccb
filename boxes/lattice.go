// Package: boxes
//
// Purpose:
//   - The lattice algebra: pointwise order, equality, join and meet.
//
// Contract:
//   - Inputs are normal-form elements produced by this Factory.
//   - Bottom is identity for Join and absorbing for Meet.
//   - Join widens only variables constrained on BOTH sides: a variable
//     absent from one operand already sits at its declared range there,
//     so the joined variable is unconstrained as well.

package boxes

import "github.com/sanedra/absint/interval"

// Order reports e1 ⊑ e2: every variable's interval in e1 is contained in
// its interval in e2. Bottom is below everything.
func (f *Factory) Order(e1, e2 Element) bool {
	if e1.bot {
		return true
	}
	if e2.bot {
		return false
	}

	// Only variables constrained in e2 can fail the pointwise check;
	// everywhere else e2 is at the declared range and contains anything.
	for name, iv2 := range e2.entries {
		iv1, err := f.intervalOf(e1, name)
		if err != nil {
			return false // entry for an undeclared variable cannot occur
		}
		if !iv2.ContainsInterval(iv1) {
			return false
		}
	}

	return true
}

// Equal reports e1 = e2, i.e. mutual containment. On normal-form elements
// this coincides with structural map equality.
func (f *Factory) Equal(e1, e2 Element) bool {
	return f.Order(e1, e2) && f.Order(e2, e1)
}

// Join returns the least upper bound of e1 and e2.
func (f *Factory) Join(e1, e2 Element) Element {
	if e1.bot {
		return Element{entries: copyEntries(e2.entries), bot: e2.bot}
	}
	if e2.bot {
		return Element{entries: copyEntries(e1.entries)}
	}

	result := make(map[string]interval.Interval)
	for name, iv1 := range e1.entries {
		if iv2, ok := e2.entries[name]; ok {
			result[name] = iv1.Union(iv2)
		}
	}

	return f.normalized(result)
}

// Meet returns the greatest lower bound of e1 and e2, or bottom when any
// variable's intervals are disjoint.
func (f *Factory) Meet(e1, e2 Element) Element {
	if e1.bot || e2.bot {
		return f.Bot()
	}

	result := copyEntries(e1.entries)
	for name, iv2 := range e2.entries {
		cur, err := f.intervalOf(Element{entries: result}, name)
		if err != nil {
			return f.Bot() // entry for an undeclared variable cannot occur
		}
		inter, ok := interval.Intersect(cur, iv2)
		if !ok {
			return f.Bot()
		}
		result[name] = inter
	}

	return f.normalized(result)
}
