// Package expr defines the tiny expression language carried on CFG edges:
// operands (variables or integer literals), arithmetic expressions, guard
// conditions and assignments.
//
// The types are deliberate sum types: an Expr is either an atom (a bare
// operand) or a single binary operation, a Guard is one relational
// comparison. Nested expressions are not part of the language; drivers that
// need them must flatten through temporaries.
//
// For front-ends that speak the list encoding (["+", "x", 1] and friends),
// ParseExpr, ParseGuard and ParseAssignment provide a thin, validating
// translation into the typed forms.
package expr
