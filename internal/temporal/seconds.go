package temporal

// Pow10 holds 10^0 .. 10^MaxScale. Indexed by a DateTime64 scale.
var Pow10 = [MaxScale + 1]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

// WholeSeconds decomposes a scaled fixed-point raw value into its whole
// seconds part: floor(raw / 10^scale). The division floors toward negative
// infinity, not toward zero, so the result stays non-decreasing in raw for
// pre-epoch (negative) timestamps: e.g. raw -1 at scale 3 is -0.001s and
// belongs to second -1, not second 0.
//
// scale must already be validated against MaxScale by the column type.
func WholeSeconds(raw int64, scale uint8) int64 {
	p := Pow10[scale]
	q := raw / p
	if raw%p != 0 && raw < 0 {
		q--
	}
	return q
}
