// SPDX-License-Identifier: MIT
// Package: cablekit/traits
//
// rule.go — the Rule tagged variant and its constructors.
//
// Design contract (strict):
//   • Rules are immutable and stateless beyond their field-name operands;
//     they are created once per entity type at registration time.
//   • The variant is closed: the rule engine switches exhaustively on RuleOp.
//   • Expr compiles its program at construction and panics on a malformed
//     source (registration-time programmer error, per the option-constructor
//     panic policy); evaluation itself never panics.

package traits

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RuleOp discriminates the Rule variant.
type RuleOp uint8

const (
	// OpNormalized asserts the field is present in the normalized record as
	// a canonical scalar (all proxies resolved by parse).
	OpNormalized RuleOp = iota

	// OpFinite asserts the field's central value is finite.
	OpFinite

	// OpNonneg asserts the field's central value is ≥ 0.
	OpNonneg

	// OpPositive asserts the field's central value is > 0.
	OpPositive

	// OpInteger asserts the field's central value is integral.
	OpInteger

	// OpLess asserts field A < field B (central values).
	OpLess

	// OpLessEq asserts field A ≤ field B (central values).
	OpLessEq

	// OpIsA asserts the field's resolved value satisfies a named capability
	// (e.g. "material": is a material-properties object).
	OpIsA

	// OpExpr evaluates a compiled boolean expression over the normalized
	// record's central values (extension point for type-specific rules).
	OpExpr
)

// Rule is a single predicate over one or two named fields of a normalized
// record. Immutable; see the constructors below.
type Rule struct {
	Op     RuleOp
	Field  string // operand A
	Field2 string // operand B (Less/LessEq only)
	Cap    string // capability name (IsA only)

	src  string      // expression source (Expr only; kept for diagnostics)
	prog *vm.Program // compiled expression (Expr only)
}

// Normalized returns a rule asserting the field has been parsed to a
// canonical scalar.
func Normalized(field string) Rule { return Rule{Op: OpNormalized, Field: field} }

// Finite returns a rule asserting the field is finite.
func Finite(field string) Rule { return Rule{Op: OpFinite, Field: field} }

// Nonneg returns a rule asserting the field is ≥ 0.
func Nonneg(field string) Rule { return Rule{Op: OpNonneg, Field: field} }

// Positive returns a rule asserting the field is > 0.
func Positive(field string) Rule { return Rule{Op: OpPositive, Field: field} }

// IntegerField returns a rule asserting the field is integral.
func IntegerField(field string) Rule { return Rule{Op: OpInteger, Field: field} }

// Less returns a rule asserting a < b.
func Less(a, b string) Rule { return Rule{Op: OpLess, Field: a, Field2: b} }

// LessEq returns a rule asserting a ≤ b.
func LessEq(a, b string) Rule { return Rule{Op: OpLessEq, Field: a, Field2: b} }

// IsA returns a rule asserting the field satisfies the named capability.
// The capability predicate itself is bound on the Registry.
func IsA(capability, field string) Rule {
	return Rule{Op: OpIsA, Field: field, Cap: capability}
}

// Expr returns a rule evaluating the given boolean expression against the
// normalized record's central values (field names are the identifiers).
// Panics if the source does not compile: rules are built at registration
// time, so a malformed program is a programmer error, not runtime input.
func Expr(src string) Rule {
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		panic(fmt.Sprintf("traits: Expr(%q): %v", src, err))
	}
	return Rule{Op: OpExpr, src: src, prog: prog}
}

// String renders the rule for diagnostics and failure messages.
func (r Rule) String() string {
	switch r.Op {
	case OpNormalized:
		return fmt.Sprintf("normalized(%s)", r.Field)
	case OpFinite:
		return fmt.Sprintf("finite(%s)", r.Field)
	case OpNonneg:
		return fmt.Sprintf("nonneg(%s)", r.Field)
	case OpPositive:
		return fmt.Sprintf("positive(%s)", r.Field)
	case OpInteger:
		return fmt.Sprintf("integer(%s)", r.Field)
	case OpLess:
		return fmt.Sprintf("%s < %s", r.Field, r.Field2)
	case OpLessEq:
		return fmt.Sprintf("%s ≤ %s", r.Field, r.Field2)
	case OpIsA:
		return fmt.Sprintf("isa(%s, %s)", r.Cap, r.Field)
	case OpExpr:
		return fmt.Sprintf("expr(%s)", r.src)
	}
	return fmt.Sprintf("rule(op=%d)", r.Op)
}
