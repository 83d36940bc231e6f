package fn

import (
	"time"

	"github.com/chronosdb/chronos/internal/temporal"
)

// Test transforms. The concrete transform catalog lives outside this core;
// these stand in for the engine's registry and cover the contract shapes:
// a numeric extraction with no periodicity (yearOf), extractions with
// month and day periods (dayOfMonthOf, hourOf), and a DateTime-producing
// truncation (startOfDayOf).

type yearOf struct{}

func (yearOf) Name() string { return "toYear" }
func (yearOf) FromDate(day uint16, _ *time.Location) uint16 {
	return uint16(temporal.DayTime(day).Year())
}
func (yearOf) FromDateTime(sec uint32, loc *time.Location) uint16 {
	return uint16(temporal.SecondsTime(sec, loc).Year())
}
func (yearOf) Factor() Factor { return ZeroFactor }

type dayOfMonthOf struct{}

func (dayOfMonthOf) Name() string { return "toDayOfMonth" }
func (dayOfMonthOf) FromDate(day uint16, _ *time.Location) uint8 {
	return uint8(temporal.DayTime(day).Day())
}
func (dayOfMonthOf) FromDateTime(sec uint32, loc *time.Location) uint8 {
	return uint8(temporal.SecondsTime(sec, loc).Day())
}
func (dayOfMonthOf) Factor() Factor { return monthFactor{} }

// monthFactor buckets values by calendar month: dayOfMonthOf is monotonic
// on any range that stays inside one month.
type monthFactor struct{}

func (monthFactor) FromDate(day uint16, _ *time.Location) int64 {
	t := temporal.DayTime(day)
	return int64(t.Year())*100 + int64(t.Month())
}
func (monthFactor) FromDateTime(sec uint32, loc *time.Location) int64 {
	t := temporal.SecondsTime(sec, loc)
	return int64(t.Year())*100 + int64(t.Month())
}

type hourOf struct{}

func (hourOf) Name() string { return "toHour" }
func (hourOf) FromDate(uint16, *time.Location) uint8 {
	return 0 // a bare date has no time-of-day
}
func (hourOf) FromDateTime(sec uint32, loc *time.Location) uint8 {
	return uint8(temporal.SecondsTime(sec, loc).Hour())
}
func (hourOf) Factor() Factor { return dayFactor{} }

// dayFactor buckets values by local calendar day.
type dayFactor struct{}

func (dayFactor) FromDate(day uint16, _ *time.Location) int64 { return int64(day) }
func (dayFactor) FromDateTime(sec uint32, loc *time.Location) int64 {
	y, m, d := temporal.SecondsTime(sec, loc).Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

type startOfDayOf struct{}

func (startOfDayOf) Name() string { return "toStartOfDay" }
func (startOfDayOf) FromDate(day uint16, _ *time.Location) uint32 {
	return uint32(day) * 86400
}
func (startOfDayOf) FromDateTime(sec uint32, loc *time.Location) uint32 {
	y, m, d := temporal.SecondsTime(sec, loc).Date()
	return uint32(time.Date(y, m, d, 0, 0, 0, 0, loc).Unix())
}
func (startOfDayOf) Factor() Factor { return ZeroFactor }

// Epoch day counts and instants reused across tests.
const (
	day20210110 = uint16(18637) // 2021-01-10
	day20210115 = uint16(18642) // 2021-01-15

	sec20210110 = uint32(1610236800) // 2021-01-10 00:00:00 UTC
	sec20210115 = uint32(1610668800) // 2021-01-15 00:00:00 UTC
)
