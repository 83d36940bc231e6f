package column

import "github.com/chronosdb/chronos/internal/temporal"

// Batch is a fixed-length run of temporal values plus its type descriptor.
// The set of implementations is closed (unexported marker method): the
// dispatcher relies on exactly one tag describing any batch at runtime.
//
// Batches are read-only views during execution; nothing in this module
// mutates a batch after construction.
type Batch interface {
	Len() int
	Type() temporal.Type

	batch() // type marker
}

// Dates holds 16-bit epoch day counts.
type Dates struct {
	Days []uint16
}

func NewDates(days []uint16) *Dates { return &Dates{Days: days} }

func (d *Dates) Len() int            { return len(d.Days) }
func (d *Dates) Type() temporal.Type { return temporal.DateType() }
func (*Dates) batch()                {}

// DateTimes holds 32-bit epoch seconds with an optional attached zone.
type DateTimes struct {
	Typ     temporal.Type
	Seconds []uint32
}

func NewDateTimes(seconds []uint32, zone string) *DateTimes {
	return &DateTimes{Typ: temporal.DateTimeType(zone), Seconds: seconds}
}

func (d *DateTimes) Len() int            { return len(d.Seconds) }
func (d *DateTimes) Type() temporal.Type { return d.Typ }
func (*DateTimes) batch()                {}

// DateTime64s holds 64-bit scaled fixed-point raw values. The scale is part
// of the column type and never changes after construction.
type DateTime64s struct {
	Typ temporal.Type
	Raw []int64
}

func NewDateTime64s(raw []int64, scale uint8, zone string) (*DateTime64s, error) {
	typ, err := temporal.DateTime64Type(scale, zone)
	if err != nil {
		return nil, err
	}
	return &DateTime64s{Typ: typ, Raw: raw}, nil
}

func (d *DateTime64s) Len() int            { return len(d.Raw) }
func (d *DateTime64s) Type() temporal.Type { return d.Typ }
func (*DateTime64s) batch()                {}
