package fn

import (
	"fmt"

	"github.com/chronosdb/chronos/internal/temporal"
)

// ArgKind classifies an argument's static type as seen by the expression
// evaluator. This core only distinguishes the temporal family, strings
// (timezone names) and everything else.
type ArgKind uint8

const (
	ArgDate ArgKind = iota
	ArgDateTime
	ArgDateTime64
	ArgString
	ArgOther
)

// Argument describes one entry of a function's argument list.
type Argument struct {
	Kind ArgKind

	// Type is the full temporal descriptor when Kind is one of the
	// temporal kinds.
	Type temporal.Type

	// IsConst and Const carry the compile-time-constant string value when
	// the evaluator knows it (timezone names must be constant).
	IsConst bool
	Const   string

	// TypeName is the engine-facing type name used in diagnostics.
	TypeName string
}

func (a Argument) isTemporal() bool {
	return a.Kind == ArgDate || a.Kind == ArgDateTime || a.Kind == ArgDateTime64
}

// TemporalArg builds the descriptor for a temporal column argument.
func TemporalArg(t temporal.Type) Argument {
	a := Argument{Type: t, TypeName: t.Name()}
	switch t.Kind {
	case temporal.Date:
		a.Kind = ArgDate
	case temporal.DateTime:
		a.Kind = ArgDateTime
	case temporal.DateTime64:
		a.Kind = ArgDateTime64
	default:
		a.Kind = ArgOther
	}
	return a
}

// ConstStringArg builds the descriptor for a constant string argument
// (a timezone name literal).
func ConstStringArg(v string) Argument {
	return Argument{Kind: ArgString, IsConst: true, Const: v, TypeName: "String"}
}

// StringArg builds the descriptor for a non-constant string argument.
func StringArg() Argument {
	return Argument{Kind: ArgString, TypeName: "String"}
}

// OtherArg builds the descriptor for any type outside this core's family.
func OtherArg(typeName string) Argument {
	return Argument{Kind: ArgOther, TypeName: typeName}
}

// CheckArguments is the argument contract validator: the first and
// cheapest gate of every invocation.
//
//   - 1 argument: must be Date, DateTime or DateTime64.
//   - 2 arguments: argument 0 as above; argument 1 must be string-typed (a
//     timezone name). Whether it is genuinely constant is re-checked later
//     by ResolveReturnType, not here. A timezone argument on a Date input
//     with a Date output is rejected: a calendar date has no time-of-day
//     and no conversion is requested.
//   - anything else: arity mismatch.
//
// No side effects beyond the returned verdict.
func CheckArguments(fnName string, args []Argument, cat Category) error {
	switch len(args) {
	case 1:
		if !args[0].isTemporal() {
			return fmt.Errorf("%w: argument of function %s has type %s, should be a date or a date with time",
				ErrIllegalArgumentType, fnName, args[0].TypeName)
		}
	case 2:
		if !args[0].isTemporal() {
			return fmt.Errorf("%w: argument 0 of function %s has type %s, should be a date or a date with time",
				ErrIllegalArgumentType, fnName, args[0].TypeName)
		}
		if args[1].Kind != ArgString {
			return fmt.Errorf("%w: function %s supports 1 or 2 arguments; the 2nd must be a constant string with a timezone name, got %s",
				ErrIllegalArgumentType, fnName, args[1].TypeName)
		}
		if args[0].Kind == ArgDate && cat == CatDate {
			return fmt.Errorf("%w: function %s", ErrIllegalTimezoneOnDate, fnName)
		}
	default:
		return fmt.Errorf("%w: function %s passed %d arguments, should be 1 or 2",
			ErrArityMismatch, fnName, len(args))
	}
	return nil
}
