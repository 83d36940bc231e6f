package fn

import (
	"github.com/chronosdb/chronos/internal/column"
	"github.com/chronosdb/chronos/internal/temporal"
	"github.com/chronosdb/chronos/internal/tz"
)

// Function binds one named Transform to its declared output category and
// exposes the full invocation surface the expression evaluator and the
// planner consume. A Function is immutable after construction and shared
// across all queries.
type Function[Out column.Value] struct {
	tr  Transform[Out]
	cat Category

	// outScale is the declared scale of DateTime64-producing functions.
	// Scale propagation rules belong to the concrete transform; this core
	// only carries the value into the resolved type.
	outScale uint8
}

func New[Out column.Value](tr Transform[Out], cat Category) *Function[Out] {
	return &Function[Out]{tr: tr, cat: cat}
}

// NewWithScale builds a DateTime64-producing function with its declared
// output scale.
func NewWithScale[Out column.Value](tr Transform[Out], cat Category, scale uint8) *Function[Out] {
	return &Function[Out]{tr: tr, cat: cat, outScale: scale}
}

func (f *Function[Out]) Name() string       { return f.tr.Name() }
func (f *Function[Out]) Category() Category { return f.cat }

// CheckArguments validates arity and argument types. First gate.
func (f *Function[Out]) CheckArguments(args []Argument) error {
	return CheckArguments(f.Name(), args, f.cat)
}

// ReturnType resolves the concrete output type for args.
func (f *Function[Out]) ReturnType(args []Argument) (ReturnType, error) {
	return ResolveReturnType(f.Name(), args, f.cat, f.outScale)
}

// Execute applies the transform over one input batch.
func (f *Function[Out]) Execute(in column.Batch, env *tz.Env) (*column.Vector[Out], error) {
	return Execute(f.Name(), in, f.tr, env)
}

// HasMonotonicityInfo is the planner's capability probe. Every function
// built on this core answers monotonicity queries.
func (f *Function[Out]) HasMonotonicityInfo() bool { return true }

// MonotonicityForRange answers the planner's range query for a
// single-argument invocation on a column of type typ.
func (f *Function[Out]) MonotonicityForRange(typ temporal.Type, iv Interval, env *tz.Env) Verdict {
	return MonotonicityForRange(f.tr.Factor(), typ, iv, env)
}
