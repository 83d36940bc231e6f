package chronos

import (
	"time"

	"github.com/chronosdb/chronos/internal/column"
	"github.com/chronosdb/chronos/internal/fn"
	"github.com/chronosdb/chronos/internal/temporal"
	"github.com/chronosdb/chronos/internal/tz"
)

// Type constructors.

func DateType() Type { return temporal.DateType() }

func DateTimeType(zone string) Type { return temporal.DateTimeType(zone) }

func DateTime64Type(scale uint8, zone string) (Type, error) {
	return temporal.DateTime64Type(scale, zone)
}

// Batch constructors.

func NewDates(days []uint16) *Dates { return column.NewDates(days) }

func NewDateTimes(seconds []uint32, zone string) *DateTimes {
	return column.NewDateTimes(seconds, zone)
}

func NewDateTime64s(raw []int64, scale uint8, zone string) (*DateTime64s, error) {
	return column.NewDateTime64s(raw, scale, zone)
}

// Argument descriptors.

func TemporalArg(t Type) Argument { return fn.TemporalArg(t) }

func ConstStringArg(v string) Argument { return fn.ConstStringArg(v) }

func StringArg() Argument { return fn.StringArg() }

func OtherArg(typeName string) Argument { return fn.OtherArg(typeName) }

// Function construction and the four core operations.

func New[Out Value](tr Transform[Out], cat Category) *Function[Out] {
	return fn.New(tr, cat)
}

func NewWithScale[Out Value](tr Transform[Out], cat Category, scale uint8) *Function[Out] {
	return fn.NewWithScale(tr, cat, scale)
}

func CheckArguments(fnName string, args []Argument, cat Category) error {
	return fn.CheckArguments(fnName, args, cat)
}

func ResolveReturnType(fnName string, args []Argument, cat Category, scale uint8) (ReturnType, error) {
	return fn.ResolveReturnType(fnName, args, cat, scale)
}

func Execute[Out Value](fnName string, in Batch, tr Transform[Out], env *Env) (*Vector[Out], error) {
	return fn.Execute(fnName, in, tr, env)
}

func MonotonicityForRange(f Factor, typ Type, iv Interval, env *Env) Verdict {
	return fn.MonotonicityForRange(f, typ, iv, env)
}

func IsZeroFactor(f Factor) bool { return fn.IsZeroFactor(f) }

func Bound(v int64) *int64 { return fn.Bound(v) }

// Execution environment.

func NewEnv(name string) (*Env, error) { return tz.NewEnv(name) }
func UTC() *Env                        { return tz.UTC() }

// WholeSeconds exposes the fixed-point decomposition used by the
// DateTime64 adapter: floor(raw / 10^scale), flooring toward negative
// infinity.
func WholeSeconds(raw int64, scale uint8) int64 {
	return temporal.WholeSeconds(raw, scale)
}

// Decoding helpers for transform authors.

func DayTime(day uint16) time.Time { return temporal.DayTime(day) }

func SecondsTime(sec uint32, loc *time.Location) time.Time {
	return temporal.SecondsTime(sec, loc)
}
