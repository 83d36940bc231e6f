package temporal

import "fmt"

// Kind tags the physical representation of a temporal column. The set is
// closed: every temporal column carries exactly one of these tags, fixed
// when the column type is resolved.
type Kind uint8

const (
	// Date is a 16-bit count of days since the Unix epoch. No timezone.
	Date Kind = iota
	// DateTime is a 32-bit count of seconds since the Unix epoch, with an
	// optional attached timezone name.
	DateTime
	// DateTime64 is a 64-bit fixed-point count of seconds since the Unix
	// epoch, scaled by 10^Scale, with an optional attached timezone name.
	DateTime64
)

func (k Kind) String() string {
	switch k {
	case Date:
		return "Date"
	case DateTime:
		return "DateTime"
	case DateTime64:
		return "DateTime64"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// MaxScale is the largest fractional-second scale a DateTime64 may declare.
// 10^18 is the largest power of ten representable in int64.
const MaxScale = 18

var ErrBadScale = fmt.Errorf("temporal: DateTime64 scale must be in [0, %d]", MaxScale)

// Type describes a temporal column type. Scale is meaningful only for
// DateTime64; Zone only for DateTime and DateTime64. An empty Zone means
// "use the session default timezone" and is resolved by the caller's
// execution context, never here.
type Type struct {
	Kind  Kind
	Scale uint8
	Zone  string
}

func DateType() Type { return Type{Kind: Date} }

func DateTimeType(zone string) Type { return Type{Kind: DateTime, Zone: zone} }

func DateTime64Type(scale uint8, zone string) (Type, error) {
	if scale > MaxScale {
		return Type{}, fmt.Errorf("%w: got %d", ErrBadScale, scale)
	}
	return Type{Kind: DateTime64, Scale: scale, Zone: zone}, nil
}

// Name renders the type the way the engine prints it in diagnostics,
// e.g. Date, DateTime('Asia/Istanbul'), DateTime64(3, 'UTC').
func (t Type) Name() string {
	switch t.Kind {
	case Date:
		return "Date"
	case DateTime:
		if t.Zone == "" {
			return "DateTime"
		}
		return fmt.Sprintf("DateTime('%s')", t.Zone)
	case DateTime64:
		if t.Zone == "" {
			return fmt.Sprintf("DateTime64(%d)", t.Scale)
		}
		return fmt.Sprintf("DateTime64(%d, '%s')", t.Scale, t.Zone)
	default:
		return t.Kind.String()
	}
}
