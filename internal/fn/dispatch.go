package fn

import (
	"fmt"

	"github.com/chronosdb/chronos/internal/column"
	"github.com/chronosdb/chronos/internal/tz"
)

// Execute runs tr over every element of in and returns an output vector of
// equal length: output row i corresponds exactly to input row i.
//
// Dispatch on the physical representation happens once per batch (a single
// type switch), never per row. The timezone is resolved once per batch from
// the column's attached zone or the environment default. The input batch is
// never mutated; the output vector is freshly allocated and owned by the
// caller. Everything here is synchronous and CPU-bound, so callers may
// shard disjoint batches across worker goroutines freely.
func Execute[Out column.Value](fnName string, in column.Batch, tr Transform[Out], env *tz.Env) (*column.Vector[Out], error) {
	switch b := in.(type) {
	case *column.Dates:
		// Day counts have no timezone; the transform gets the session
		// default and may ignore it.
		loc, err := tz.Resolve("", env)
		if err != nil {
			return nil, err
		}
		out := column.NewVector[Out](len(b.Days))
		for i, day := range b.Days {
			out.Values[i] = tr.FromDate(day, loc)
		}
		return out, nil

	case *column.DateTimes:
		loc, err := tz.Resolve(b.Typ.Zone, env)
		if err != nil {
			return nil, err
		}
		out := column.NewVector[Out](len(b.Seconds))
		for i, sec := range b.Seconds {
			out.Values[i] = tr.FromDateTime(sec, loc)
		}
		return out, nil

	case *column.DateTime64s:
		loc, err := tz.Resolve(b.Typ.Zone, env)
		if err != nil {
			return nil, err
		}
		adapted := scaleAdapter[Out]{inner: tr, scale: b.Typ.Scale}
		out := column.NewVector[Out](len(b.Raw))
		for i, raw := range b.Raw {
			out.Values[i] = adapted.fromRaw(raw, loc)
		}
		return out, nil

	default:
		// Unreachable when validation and type resolution gated upstream.
		return nil, fmt.Errorf("%w: function %s got column of type %s",
			ErrUnsupportedColumnType, fnName, in.Type().Name())
	}
}
