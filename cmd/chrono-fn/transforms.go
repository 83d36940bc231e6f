package main

import (
	"fmt"
	"time"

	"github.com/chronosdb/chronos"
)

// The engine's transform catalog lives outside the core; this binary ships
// a handful of transforms of its own to have something to run.

type toYear struct{}

func (toYear) Name() string { return "toYear" }
func (toYear) FromDate(day uint16, _ *time.Location) uint16 {
	return uint16(chronos.DayTime(day).Year())
}
func (toYear) FromDateTime(sec uint32, loc *time.Location) uint16 {
	return uint16(chronos.SecondsTime(sec, loc).Year())
}
func (toYear) Factor() chronos.Factor { return chronos.ZeroFactor }

type toDayOfMonth struct{}

func (toDayOfMonth) Name() string { return "toDayOfMonth" }
func (toDayOfMonth) FromDate(day uint16, _ *time.Location) uint8 {
	return uint8(chronos.DayTime(day).Day())
}
func (toDayOfMonth) FromDateTime(sec uint32, loc *time.Location) uint8 {
	return uint8(chronos.SecondsTime(sec, loc).Day())
}
func (toDayOfMonth) Factor() chronos.Factor { return monthBucket{} }

type toHour struct{}

func (toHour) Name() string { return "toHour" }
func (toHour) FromDate(uint16, *time.Location) uint8 {
	return 0 // a bare date has no time-of-day
}
func (toHour) FromDateTime(sec uint32, loc *time.Location) uint8 {
	return uint8(chronos.SecondsTime(sec, loc).Hour())
}
func (toHour) Factor() chronos.Factor { return dayBucket{} }

type toStartOfDay struct{}

func (toStartOfDay) Name() string { return "toStartOfDay" }
func (toStartOfDay) FromDate(day uint16, _ *time.Location) uint32 {
	return uint32(day) * 86400
}
func (toStartOfDay) FromDateTime(sec uint32, loc *time.Location) uint32 {
	y, m, d := chronos.SecondsTime(sec, loc).Date()
	return uint32(time.Date(y, m, d, 0, 0, 0, 0, loc).Unix())
}
func (toStartOfDay) Factor() chronos.Factor { return chronos.ZeroFactor }

type monthBucket struct{}

func (monthBucket) FromDate(day uint16, _ *time.Location) int64 {
	t := chronos.DayTime(day)
	return int64(t.Year())*100 + int64(t.Month())
}
func (monthBucket) FromDateTime(sec uint32, loc *time.Location) int64 {
	t := chronos.SecondsTime(sec, loc)
	return int64(t.Year())*100 + int64(t.Month())
}

type dayBucket struct{}

func (dayBucket) FromDate(day uint16, _ *time.Location) int64 { return int64(day) }
func (dayBucket) FromDateTime(sec uint32, loc *time.Location) int64 {
	y, m, d := chronos.SecondsTime(sec, loc).Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

// registryEntry erases the transform's output type parameter so entries of
// different widths share one registry.
type registryEntry struct {
	check   func(args []chronos.Argument) error
	resolve func(args []chronos.Argument) (chronos.ReturnType, error)
	apply   func(in chronos.Batch, env *chronos.Env) ([]string, error)
	mono    func(typ chronos.Type, iv chronos.Interval, env *chronos.Env) chronos.Verdict
}

func entry[Out chronos.Value](tr chronos.Transform[Out], cat chronos.Category) registryEntry {
	f := chronos.New(tr, cat)
	return registryEntry{
		check:   f.CheckArguments,
		resolve: f.ReturnType,
		apply: func(in chronos.Batch, env *chronos.Env) ([]string, error) {
			out, err := f.Execute(in, env)
			if err != nil {
				return nil, err
			}
			rendered := make([]string, out.Len())
			for i, v := range out.Values {
				rendered[i] = fmt.Sprintf("%d", v)
			}
			return rendered, nil
		},
		mono: f.MonotonicityForRange,
	}
}

var registry = map[string]registryEntry{
	"toYear":       entry[uint16](toYear{}, chronos.CatNumber),
	"toDayOfMonth": entry[uint8](toDayOfMonth{}, chronos.CatNumber),
	"toHour":       entry[uint8](toHour{}, chronos.CatNumber),
	"toStartOfDay": entry[uint32](toStartOfDay{}, chronos.CatDateTime),
}
