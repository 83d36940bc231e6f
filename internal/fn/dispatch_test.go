package fn

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronosdb/chronos/internal/column"
	"github.com/chronosdb/chronos/internal/temporal"
	"github.com/chronosdb/chronos/internal/tz"
)

// The same underlying instants must give identical outputs through all
// three dispatch paths: one written transform services every physical
// representation.
func TestExecute_RepresentationTransparency(t *testing.T) {
	env := tz.UTC()

	days := []uint16{day20210110, day20210115}
	secs := []uint32{sec20210110, sec20210115}
	raws := []int64{int64(sec20210110) * 1000, int64(sec20210115) * 1000}

	dt64, err := column.NewDateTime64s(raws, 3, "")
	require.NoError(t, err)

	fromDates, err := Execute[uint16]("toYear", column.NewDates(days), yearOf{}, env)
	require.NoError(t, err)
	fromDateTimes, err := Execute[uint16]("toYear", column.NewDateTimes(secs, ""), yearOf{}, env)
	require.NoError(t, err)
	fromDateTime64s, err := Execute[uint16]("toYear", dt64, yearOf{}, env)
	require.NoError(t, err)

	want := []uint16{2021, 2021}
	assert.Equal(t, want, fromDates.Values)
	assert.Equal(t, want, fromDateTimes.Values)
	assert.Equal(t, want, fromDateTime64s.Values)

	days2, err := Execute[uint8]("toDayOfMonth", column.NewDates(days), dayOfMonthOf{}, env)
	require.NoError(t, err)
	secs2, err := Execute[uint8]("toDayOfMonth", column.NewDateTimes(secs, ""), dayOfMonthOf{}, env)
	require.NoError(t, err)
	raws2, err := Execute[uint8]("toDayOfMonth", dt64, dayOfMonthOf{}, env)
	require.NoError(t, err)

	wantDays := []uint8{10, 15}
	assert.Equal(t, wantDays, days2.Values)
	assert.Equal(t, wantDays, secs2.Values)
	assert.Equal(t, wantDays, raws2.Values)
}

func TestExecute_RowOrderAndLength(t *testing.T) {
	days := []uint16{3, 1, 2, 1, 3}
	out, err := Execute[uint8]("toDayOfMonth", column.NewDates(days), dayOfMonthOf{}, tz.UTC())
	require.NoError(t, err)
	require.Equal(t, len(days), out.Len())

	// Output row i corresponds exactly to input row i; no reordering.
	for i, d := range days {
		assert.Equal(t, uint8(temporal.DayTime(d).Day()), out.Values[i], "row %d", i)
	}
}

func TestExecute_TimezoneResolvedOncePerBatch(t *testing.T) {
	// 2021-01-10 00:00 UTC is 03:00 in Istanbul (fixed +03).
	secs := []uint32{sec20210110}

	utcOut, err := Execute[uint8]("toHour", column.NewDateTimes(secs, ""), hourOf{}, tz.UTC())
	require.NoError(t, err)
	assert.Equal(t, []uint8{0}, utcOut.Values)

	// Zone attached to the column wins.
	istOut, err := Execute[uint8]("toHour", column.NewDateTimes(secs, "Asia/Istanbul"), hourOf{}, tz.UTC())
	require.NoError(t, err)
	assert.Equal(t, []uint8{3}, istOut.Values)

	// No attached zone: the execution-context default applies.
	env, err := tz.NewEnv("Asia/Istanbul")
	require.NoError(t, err)
	defOut, err := Execute[uint8]("toHour", column.NewDateTimes(secs, ""), hourOf{}, env)
	require.NoError(t, err)
	assert.Equal(t, []uint8{3}, defOut.Values)
}

func TestExecute_DateTime64ScaleAdapter(t *testing.T) {
	// Sub-second precision must not leak into the transform: every raw
	// value inside the same second maps to the same output.
	raws := []int64{
		int64(sec20210110) * 1000,
		int64(sec20210110)*1000 + 1,
		int64(sec20210110)*1000 + 999,
	}
	b, err := column.NewDateTime64s(raws, 3, "")
	require.NoError(t, err)

	out, err := Execute[uint32]("toStartOfDay", b, startOfDayOf{}, tz.UTC())
	require.NoError(t, err)
	assert.Equal(t, []uint32{sec20210110, sec20210110, sec20210110}, out.Values)
}

func TestExecute_UnknownTimezoneFails(t *testing.T) {
	_, err := Execute[uint8]("toHour", column.NewDateTimes([]uint32{0}, "Not/AZone"), hourOf{}, tz.UTC())
	require.Error(t, err)
}

// weirdBatch reaches the dispatcher with a tag outside the closed set.
type weirdBatch struct{ *column.Dates }

func TestExecute_UnsupportedColumnType(t *testing.T) {
	in := weirdBatch{column.NewDates([]uint16{1})}
	_, err := Execute[uint16]("toYear", in, yearOf{}, tz.UTC())
	require.ErrorIs(t, err, ErrUnsupportedColumnType)
	assert.Contains(t, err.Error(), "toYear")
}

func TestExecute_EmptyBatch(t *testing.T) {
	out, err := Execute[uint16]("toYear", column.NewDates(nil), yearOf{}, tz.UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

// Transform instances are shared read-only; disjoint batches may run on
// concurrent workers with no synchronization.
func TestExecute_ParallelBatches(t *testing.T) {
	env := tz.UTC()
	tr := yearOf{}

	var wg sync.WaitGroup
	results := make([][]uint16, 8)
	for w := range results {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			days := make([]uint16, 1000)
			for i := range days {
				days[i] = day20210110 + uint16(w)
			}
			out, err := Execute[uint16]("toYear", column.NewDates(days), tr, env)
			if err != nil {
				t.Error(err)
				return
			}
			results[w] = out.Values
		}(w)
	}
	wg.Wait()

	for w, vals := range results {
		require.Len(t, vals, 1000, "worker %d", w)
		for _, v := range vals {
			require.Equal(t, uint16(2021), v)
		}
	}
}

func TestExecute_DoesNotMutateInput(t *testing.T) {
	days := []uint16{day20210110, day20210115}
	in := column.NewDates(days)
	_, err := Execute[uint16]("toYear", in, yearOf{}, tz.UTC())
	require.NoError(t, err)
	assert.Equal(t, []uint16{day20210110, day20210115}, in.Days)
}
