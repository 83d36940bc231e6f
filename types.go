// Package chronos is the top-level facade for the temporal scalar-function
// core of the chronos columnar engine: argument validation, return-type
// resolution, batch execution and planner-facing monotonicity analysis.
package chronos

import (
	"github.com/chronosdb/chronos/internal/column"
	"github.com/chronosdb/chronos/internal/fn"
	"github.com/chronosdb/chronos/internal/temporal"
	"github.com/chronosdb/chronos/internal/tz"
)

type (
	Kind        = temporal.Kind
	Type        = temporal.Type
	Batch       = column.Batch
	Dates       = column.Dates
	DateTimes   = column.DateTimes
	DateTime64s = column.DateTime64s
	Value       = column.Value
	Env         = tz.Env
	Argument    = fn.Argument
	ArgKind     = fn.ArgKind
	Category    = fn.Category
	ReturnType  = fn.ReturnType
	Factor      = fn.Factor
	Interval    = fn.Interval
	Verdict     = fn.Verdict
)

type (
	Transform[Out Value] = fn.Transform[Out]
	Function[Out Value]  = fn.Function[Out]
	Vector[T Value]      = column.Vector[T]
)

const (
	Date       = temporal.Date
	DateTime   = temporal.DateTime
	DateTime64 = temporal.DateTime64

	MaxScale = temporal.MaxScale
)

const (
	CatDate       = fn.CatDate
	CatDateTime   = fn.CatDateTime
	CatDateTime64 = fn.CatDateTime64
	CatNumber     = fn.CatNumber
)

const (
	Indeterminate       = fn.Indeterminate
	NotMonotonic        = fn.NotMonotonic
	MonotonicOnInterval = fn.MonotonicOnInterval
	AlwaysMonotonic     = fn.AlwaysMonotonic
)

var (
	ErrArityMismatch         = fn.ErrArityMismatch
	ErrIllegalArgumentType   = fn.ErrIllegalArgumentType
	ErrIllegalTimezoneOnDate = fn.ErrIllegalTimezoneOnDate
	ErrNonConstantTimezone   = fn.ErrNonConstantTimezone
	ErrUnsupportedColumnType = fn.ErrUnsupportedColumnType

	ZeroFactor = fn.ZeroFactor
)
