package fn

import (
	"fmt"

	"github.com/chronosdb/chronos/internal/temporal"
)

// Category is the static output shape a transform declares: which temporal
// representation it produces, or a plain fixed-width number (extractions
// like year/hour, which carry no timezone semantics).
type Category uint8

const (
	CatDate Category = iota
	CatDateTime
	CatDateTime64
	CatNumber
)

func (c Category) String() string {
	switch c {
	case CatDate:
		return "Date"
	case CatDateTime:
		return "DateTime"
	case CatDateTime64:
		return "DateTime64"
	case CatNumber:
		return "Number"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// ReturnType is the resolved output type of an invocation. Temporal is
// meaningful only for the temporal categories.
type ReturnType struct {
	Category Category
	Temporal temporal.Type
}

// ResolveReturnType derives the concrete output type once validation has
// passed. DateTime and DateTime64 outputs inherit the timezone extracted
// from argument 1 when present, else the input column's attached zone; an
// empty zone means the session default and is resolved at execution time.
// Date outputs never carry a timezone. The DateTime64 scale is carried
// from the transform's declaration, never invented here.
//
// The one failure mode left at this stage: argument 1, if present, must be
// a genuinely constant string.
func ResolveReturnType(fnName string, args []Argument, cat Category, scale uint8) (ReturnType, error) {
	zone, err := timezoneName(fnName, args)
	if err != nil {
		return ReturnType{}, err
	}

	switch cat {
	case CatDate:
		return ReturnType{Category: CatDate, Temporal: temporal.DateType()}, nil
	case CatDateTime:
		return ReturnType{Category: CatDateTime, Temporal: temporal.DateTimeType(zone)}, nil
	case CatDateTime64:
		typ, err := temporal.DateTime64Type(scale, zone)
		if err != nil {
			return ReturnType{}, fmt.Errorf("function %s: %w", fnName, err)
		}
		return ReturnType{Category: CatDateTime64, Temporal: typ}, nil
	default:
		return ReturnType{Category: CatNumber}, nil
	}
}

// timezoneName extracts the timezone for the result type: the constant
// value of argument 1 when two arguments were supplied, else whatever zone
// the input column already carries.
func timezoneName(fnName string, args []Argument) (string, error) {
	if len(args) >= 2 {
		if !args[1].IsConst {
			return "", fmt.Errorf("%w: argument 1 of function %s", ErrNonConstantTimezone, fnName)
		}
		return args[1].Const, nil
	}
	if len(args) == 1 && args[0].isTemporal() {
		return args[0].Type.Zone, nil
	}
	return "", nil
}
