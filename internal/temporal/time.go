package temporal

import "time"

const secondsPerDay = 86400

// DayTime converts an epoch day count into the UTC midnight of that day.
// Calendar dates carry no time-of-day and no timezone, so the conversion
// is timezone-free by construction.
func DayTime(day uint16) time.Time {
	return time.Unix(int64(day)*secondsPerDay, 0).UTC()
}

// SecondsTime converts epoch seconds into wall time in loc.
func SecondsTime(sec uint32, loc *time.Location) time.Time {
	return time.Unix(int64(sec), 0).In(loc)
}

// DaysFromTime converts a wall time into an epoch day count, flooring to
// the UTC day the instant falls in.
func DaysFromTime(t time.Time) uint16 {
	return uint16(t.Unix() / secondsPerDay)
}
