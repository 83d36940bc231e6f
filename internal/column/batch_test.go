package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronosdb/chronos/internal/temporal"
)

func TestBatchTypes(t *testing.T) {
	d := NewDates([]uint16{18637, 18642})
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, temporal.Date, d.Type().Kind)

	dt := NewDateTimes([]uint32{1610000000}, "Asia/Istanbul")
	assert.Equal(t, 1, dt.Len())
	assert.Equal(t, temporal.DateTime, dt.Type().Kind)
	assert.Equal(t, "Asia/Istanbul", dt.Type().Zone)

	dt64, err := NewDateTime64s([]int64{1610000000123}, 3, "")
	require.NoError(t, err)
	assert.Equal(t, 1, dt64.Len())
	assert.Equal(t, uint8(3), dt64.Type().Scale)

	_, err = NewDateTime64s(nil, 19, "")
	require.ErrorIs(t, err, temporal.ErrBadScale)
}

func TestCodec_RoundTrip(t *testing.T) {
	d := NewDates([]uint16{0, 1, 18637, 65535})
	got, err := DecodeDates(EncodeDates(d))
	require.NoError(t, err)
	assert.Equal(t, d.Days, got.Days)

	dt := NewDateTimes([]uint32{0, 1610000000, 4294967295}, "UTC")
	gotDT, err := DecodeDateTimes(EncodeDateTimes(dt), "UTC")
	require.NoError(t, err)
	assert.Equal(t, dt.Seconds, gotDT.Seconds)
	assert.Equal(t, dt.Typ, gotDT.Typ)

	dt64, err := NewDateTime64s([]int64{-1001, -1, 0, 1, 1610000000123}, 3, "UTC")
	require.NoError(t, err)
	gotDT64, err := DecodeDateTime64s(EncodeDateTime64s(dt64), 3, "UTC")
	require.NoError(t, err)
	assert.Equal(t, dt64.Raw, gotDT64.Raw)
	assert.Equal(t, dt64.Typ, gotDT64.Typ)
}

func TestCodec_ShortBuffer(t *testing.T) {
	_, err := DecodeDates(nil)
	require.ErrorIs(t, err, ErrShortBuffer)

	// Header claims more rows than the payload holds.
	buf := EncodeDates(NewDates([]uint16{1, 2, 3}))
	_, err = DecodeDates(buf[:len(buf)-1])
	require.ErrorIs(t, err, ErrShortBuffer)

	_, err = DecodeDateTimes([]byte{9, 0, 0, 0}, "")
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestNewVector(t *testing.T) {
	v := NewVector[uint16](4)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, []uint16{0, 0, 0, 0}, v.Values)
}
