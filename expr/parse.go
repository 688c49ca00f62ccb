// Package: expr
//
// Purpose:
//   - Thin, validating parser from the list encoding used by external
//     front-ends into the typed Expr/Guard/Assignment forms.
//
// Contract:
//   - Arithmetic expression: [v] or [op, a, b].
//   - Guard:                 [relop, a, b].
//   - Assignment:            [target, expression].
//   - Operand elements are variable names (string) or integer literals
//     of type int, int32 or int64; everything else, other integer types
//     included, is ErrBadOperand.

package expr

import "fmt"

// ParseExpr translates the list form of an arithmetic expression:
// a one-element list is an atom, a three-element list is a binop.
func ParseExpr(list []any) (Expr, error) {
	switch len(list) {
	case 1:
		o, err := parseOperand(list[0])
		if err != nil {
			return Expr{}, fmt.Errorf("ParseExpr: %w", err)
		}

		return Atom(o), nil

	case 3:
		op, ok := list[0].(string)
		if !ok || !Op(op).Valid() {
			return Expr{}, fmt.Errorf("ParseExpr: %v: %w", list[0], ErrBadOperator)
		}
		a, err := parseOperand(list[1])
		if err != nil {
			return Expr{}, fmt.Errorf("ParseExpr: %w", err)
		}
		b, err := parseOperand(list[2])
		if err != nil {
			return Expr{}, fmt.Errorf("ParseExpr: %w", err)
		}

		return Binary(Op(op), a, b), nil

	default:
		return Expr{}, fmt.Errorf("ParseExpr: %d elements: %w", len(list), ErrBadShape)
	}
}

// ParseGuard translates the three-element list form of a guard.
func ParseGuard(list []any) (Guard, error) {
	if len(list) != 3 {
		return Guard{}, fmt.Errorf("ParseGuard: %d elements: %w", len(list), ErrBadShape)
	}

	rel, ok := list[0].(string)
	if !ok || !RelOp(rel).Valid() {
		return Guard{}, fmt.Errorf("ParseGuard: %v: %w", list[0], ErrBadRelOp)
	}
	a, err := parseOperand(list[1])
	if err != nil {
		return Guard{}, fmt.Errorf("ParseGuard: %w", err)
	}
	b, err := parseOperand(list[2])
	if err != nil {
		return Guard{}, fmt.Errorf("ParseGuard: %w", err)
	}

	return Guard{Rel: RelOp(rel), A: a, B: b}, nil
}

// ParseAssignment translates the two-element [target, expression] form.
func ParseAssignment(list []any) (Assignment, error) {
	if len(list) != 2 {
		return Assignment{}, fmt.Errorf("ParseAssignment: %d elements: %w", len(list), ErrBadShape)
	}

	target, ok := list[0].(string)
	if !ok {
		return Assignment{}, fmt.Errorf("ParseAssignment: target %v: %w", list[0], ErrBadOperand)
	}
	inner, ok := list[1].([]any)
	if !ok {
		return Assignment{}, fmt.Errorf("ParseAssignment: expression %v: %w", list[1], ErrBadShape)
	}
	e, err := ParseExpr(inner)
	if err != nil {
		return Assignment{}, fmt.Errorf("ParseAssignment: %w", err)
	}

	return Assignment{Target: target, Expr: e}, nil
}

// parseOperand accepts a variable name or an int, int32 or int64 literal.
func parseOperand(v any) (Operand, error) {
	switch x := v.(type) {
	case string:
		return Var(x), nil
	case int:
		return Lit(int64(x)), nil
	case int32:
		return Lit(int64(x)), nil
	case int64:
		return Lit(x), nil
	default:
		return Operand{}, fmt.Errorf("%v (%T): %w", v, v, ErrBadOperand)
	}
}
