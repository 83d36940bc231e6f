package column

// Value constrains the fixed-width scalar types a transform may produce:
// numeric extractions (years, hours, ...) and the raw temporal encodings
// themselves (day counts, epoch seconds).
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// Vector is the output column of one batch execution. It is freshly
// allocated per call and exclusively owned by the caller once returned.
type Vector[T Value] struct {
	Values []T
}

func NewVector[T Value](n int) *Vector[T] {
	return &Vector[T]{Values: make([]T, n)}
}

func (v *Vector[T]) Len() int { return len(v.Values) }
