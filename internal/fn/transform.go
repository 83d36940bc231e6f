// Package fn is the generic execution and optimizer-analysis core for
// scalar temporal functions: it validates argument lists, resolves return
// types, runs a pure Transform over whole column batches with
// representation-specific decoding, and answers monotonicity queries for
// the planner's range-pushdown decisions.
package fn

import (
	"time"

	"github.com/chronosdb/chronos/internal/column"
	"github.com/chronosdb/chronos/internal/temporal"
)

// Transform is the unit of pluggable business logic: a stateless pure
// function from a decoded temporal value and a timezone to an output
// scalar. Implementations must be total over the raw domain, referentially
// transparent and safe to call from concurrent workers; the framework
// shares one instance across all batches and queries.
//
// A single Transform written against day counts and epoch seconds services
// all three physical representations: the DateTime64 path is adapted to
// FromDateTime through whole-seconds decomposition (see scaleAdapter).
type Transform[Out column.Value] interface {
	Name() string

	// FromDate maps a 16-bit epoch day count. loc is the session default;
	// most date transforms ignore it, at their discretion.
	FromDate(day uint16, loc *time.Location) Out

	// FromDateTime maps 32-bit epoch seconds interpreted in loc.
	FromDateTime(sec uint32, loc *time.Location) Out

	// Factor is the companion transform used only for monotonicity
	// analysis. Return ZeroFactor when the transform has no periodicity.
	Factor() Factor
}

// Factor maps a raw temporal value to a coarser bucket such that the
// owning Transform is monotonic on any sub-range where the factor is
// constant. Same purity and concurrency contract as Transform.
type Factor interface {
	FromDate(day uint16, loc *time.Location) int64
	FromDateTime(sec uint32, loc *time.Location) int64
}

// ZeroFactor is the sentinel meaning "unconditionally monotonic": the
// degenerate constant factor of transforms with no period boundary, e.g. a
// strictly increasing numeric cast.
var ZeroFactor Factor = zeroFactor{}

type zeroFactor struct{}

func (zeroFactor) FromDate(uint16, *time.Location) int64     { return 0 }
func (zeroFactor) FromDateTime(uint32, *time.Location) int64 { return 0 }

// IsZeroFactor reports whether f is the always-constant sentinel.
func IsZeroFactor(f Factor) bool {
	_, ok := f.(zeroFactor)
	return ok
}

// scaleAdapter wraps any Transform with a DateTime64 scale: raw values are
// decomposed into whole seconds and handed to the wrapped FromDateTime.
// This is what keeps DateTime64 support free of per-transform code.
type scaleAdapter[Out column.Value] struct {
	inner Transform[Out]
	scale uint8
}

func (a scaleAdapter[Out]) fromRaw(raw int64, loc *time.Location) Out {
	return a.inner.FromDateTime(uint32(temporal.WholeSeconds(raw, a.scale)), loc)
}
