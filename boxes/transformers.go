// Package: boxes
//
// Purpose:
//   - The abstract transformers: Assign (strongest postcondition of
//     target := expr), Assume (strongest postcondition of a guard), and
//     the SetInterval driver utility.
//
// Contract:
//   - Bottom short-circuits: every transformer maps bottom to bottom.
//   - Undeclared variables and unknown operators are fatal errors.
//   - A definite division by zero collapses to bottom and records a
//     DivisionByZero diagnostic; a zero-straddling divisor records
//     PossibleDivisionByZero and keeps the computed bound.
//   - Stored intervals are restricted to the declared range; an empty
//     restriction collapses the whole element to bottom.

package boxes

import (
	"errors"
	"fmt"

	"github.com/sanedra/absint/diag"
	"github.com/sanedra/absint/expr"
	"github.com/sanedra/absint/interval"
)

// Assign returns the strongest postcondition of as.Target := as.Expr over e.
//
// Atom expressions evaluate as operand + 0, so copies and constant loads
// share the binary evaluation path.
func (f *Factory) Assign(e Element, as expr.Assignment) (Element, error) {
	if e.bot {
		return f.Bot(), nil
	}
	if _, err := f.topOf(as.Target); err != nil {
		return Element{}, fmt.Errorf("Assign: target %w", err)
	}

	ex := as.Expr
	if ex.Atomic {
		ex = expr.Binary(expr.OpAdd, ex.A, expr.Lit(0))
	}

	a, err := f.operandInterval(e, ex.A)
	if err != nil {
		return Element{}, fmt.Errorf("Assign: %w", err)
	}
	b, err := f.operandInterval(e, ex.B)
	if err != nil {
		return Element{}, fmt.Errorf("Assign: %w", err)
	}

	var value interval.Interval
	switch ex.Op {
	case expr.OpAdd:
		value = a.Add(b)
	case expr.OpSub:
		value = a.Sub(b)
	case expr.OpMul:
		value = a.Mul(b)
	case expr.OpMod:
		value, err = interval.Mod(a, b)
		if err != nil {
			if errors.Is(err, interval.ErrDivisionByZero) {
				f.diags.Report(diag.DivisionByZero,
					"%s := %s %% %s: divisor is exactly 0", as.Target, a, b)

				return f.Bot(), nil
			}

			return Element{}, fmt.Errorf("Assign: %w", err)
		}
		if b.Contains(0) {
			f.diags.Report(diag.PossibleDivisionByZero,
				"%s := %s %% %s: divisor may be 0", as.Target, a, b)
		}
	default:
		return Element{}, fmt.Errorf("Assign: %q: %w", ex.Op, ErrUnknownOperator)
	}

	result := copyEntries(e.entries)
	if !f.putClamped(result, as.Target, value.Lo, value.Hi) {
		return f.Bot(), nil
	}

	return f.normalized(result), nil
}

// Assume returns the strongest postcondition of the guard g over e.
//
// Strict and non-strict comparisons follow the refinement rules of the
// interval domain; > and >= are rewritten to < and <= with swapped
// operands. Only variable operands are written back; refining a literal
// is meaningless.
func (f *Factory) Assume(e Element, g expr.Guard) (Element, error) {
	if e.bot {
		return f.Bot(), nil
	}

	// Normalize direction first so the remaining cases face only < <= == !=.
	switch g.Rel {
	case expr.RelGT:
		return f.Assume(e, expr.Guard{Rel: expr.RelLT, A: g.B, B: g.A})
	case expr.RelGE:
		return f.Assume(e, expr.Guard{Rel: expr.RelLE, A: g.B, B: g.A})
	}

	i1, err := f.operandInterval(e, g.A)
	if err != nil {
		return Element{}, fmt.Errorf("Assume: %w", err)
	}
	i2, err := f.operandInterval(e, g.B)
	if err != nil {
		return Element{}, fmt.Errorf("Assume: %w", err)
	}

	// Variable names to write refinements back to; empty for literals.
	var leftVar, rightVar string
	if !g.A.IsLit {
		leftVar = g.A.Name
	}
	if !g.B.IsLit {
		rightVar = g.B.Name
	}

	result := copyEntries(e.entries)

	switch g.Rel {
	case expr.RelEQ:
		inter, ok := interval.Intersect(i1, i2)
		if !ok {
			return f.Bot(), nil
		}
		// Both sides carry the same values now; refine both variables.
		if leftVar != "" && !f.putClamped(result, leftVar, inter.Lo, inter.Hi) {
			return f.Bot(), nil
		}
		if rightVar != "" && !f.putClamped(result, rightVar, inter.Lo, inter.Hi) {
			return f.Bot(), nil
		}

	case expr.RelNE:
		// Disequality refutes only a definite equality: the same variable
		// on both sides, or two identical singletons.
		if leftVar != "" && leftVar == rightVar {
			return f.Bot(), nil
		}
		if i1.IsSingleton() && i2.IsSingleton() && i1.Lo == i2.Lo {
			return f.Bot(), nil
		}
		// No refinement expressible in the interval lattice otherwise.

	case expr.RelLE:
		if i2.Hi < i1.Lo {
			return f.Bot(), nil
		}
		if leftVar != "" && !f.putClamped(result, leftVar, i1.Lo, min(i1.Hi, i2.Hi)) {
			return f.Bot(), nil
		}
		if rightVar != "" && !f.putClamped(result, rightVar, max(i1.Lo, i2.Lo), i2.Hi) {
			return f.Bot(), nil
		}

	case expr.RelLT:
		if leftVar != "" && leftVar == rightVar {
			return f.Bot(), nil // x < x is unsatisfiable
		}
		if i2.Hi <= i1.Lo {
			return f.Bot(), nil
		}
		if leftVar != "" && !f.putClamped(result, leftVar, i1.Lo, min(i1.Hi, i2.Hi-1)) {
			return f.Bot(), nil
		}
		if rightVar != "" && !f.putClamped(result, rightVar, max(i1.Lo+1, i2.Lo), i2.Hi) {
			return f.Bot(), nil
		}

	default:
		return Element{}, fmt.Errorf("Assume: %q: %w", g.Rel, ErrUnknownRelOp)
	}

	return f.normalized(result), nil
}

// SetInterval returns e with name pinned to [lo, hi]; a driver utility for
// seeding analysis states. Applied to bottom it seeds a fresh map, like
// the other constructors it restricts to the declared range.
func (f *Factory) SetInterval(e Element, name string, lo, hi int64) (Element, error) {
	if _, err := f.topOf(name); err != nil {
		return Element{}, fmt.Errorf("SetInterval: %w", err)
	}

	result := copyEntries(e.entries)
	if !f.putClamped(result, name, lo, hi) {
		return f.Bot(), nil
	}

	return f.normalized(result), nil
}

// operandInterval resolves an operand to an interval: literals become
// points, variables resolve through e (declared range when unconstrained).
func (f *Factory) operandInterval(e Element, o expr.Operand) (interval.Interval, error) {
	if o.IsLit {
		return interval.Point(o.Value), nil
	}

	return f.intervalOf(e, o.Name)
}
