package fn

import (
	"github.com/chronosdb/chronos/internal/temporal"
	"github.com/chronosdb/chronos/internal/tz"
)

// Verdict is the monotonicity answer handed to the planner. The planner
// treats AlwaysMonotonic and MonotonicOnInterval as license to rewrite a
// range predicate on the function's output into a range predicate on the
// raw input column; the other two force a fall back to full scan.
type Verdict uint8

const (
	Indeterminate Verdict = iota
	NotMonotonic
	MonotonicOnInterval
	AlwaysMonotonic
)

func (v Verdict) String() string {
	switch v {
	case Indeterminate:
		return "Indeterminate"
	case NotMonotonic:
		return "NotMonotonic"
	case MonotonicOnInterval:
		return "MonotonicOnInterval"
	case AlwaysMonotonic:
		return "AlwaysMonotonic"
	default:
		return "Verdict(?)"
	}
}

// Interval is a closed [Left, Right] pair of raw boundary values on one
// column, as supplied by the planner. Either bound may be absent.
type Interval struct {
	Left  *int64
	Right *int64
}

// Bound is a convenience for building interval pointers in callers/tests.
func Bound(v int64) *int64 { return &v }

// MonotonicityForRange reports whether a transform with factor f is
// provably order-preserving over iv on a column of type typ.
//
// Defined only for single-argument invocations: with a second (timezone)
// argument the default-timezone assumption below is invalid, and callers
// must not consult this analysis.
//
// The transform family's construction guarantees the transform is
// monotonic on any sub-range where the factor is constant, so equal factor
// values at both endpoints mean the whole closed interval sits inside one
// period.
func MonotonicityForRange(f Factor, typ temporal.Type, iv Interval, env *tz.Env) Verdict {
	if IsZeroFactor(f) {
		return AlwaysMonotonic
	}
	if iv.Left == nil || iv.Right == nil {
		return Indeterminate
	}

	loc, err := tz.Resolve("", env)
	if err != nil {
		return Indeterminate
	}

	var fl, fr int64
	switch typ.Kind {
	case temporal.Date:
		fl = f.FromDate(uint16(*iv.Left), loc)
		fr = f.FromDate(uint16(*iv.Right), loc)
	case temporal.DateTime:
		fl = f.FromDateTime(uint32(*iv.Left), loc)
		fr = f.FromDateTime(uint32(*iv.Right), loc)
	case temporal.DateTime64:
		// Bounds arrive in the column's raw scaled representation; bring
		// them to whole seconds the same way the dispatcher does.
		fl = f.FromDateTime(uint32(temporal.WholeSeconds(*iv.Left, typ.Scale)), loc)
		fr = f.FromDateTime(uint32(temporal.WholeSeconds(*iv.Right, typ.Scale)), loc)
	default:
		return Indeterminate
	}

	if fl == fr {
		return MonotonicOnInterval
	}
	return NotMonotonic
}
