package core

import (
	"time"
)

// Day represents a single calendar day, normalized to UTC midnight.
// Every record in a generated dataset carries one.
type Day time.Time

// NewDay truncates t to UTC midnight
func NewDay(t time.Time) Day {
	u := t.UTC()
	return Day(time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC))
}

// Time returns the underlying time.Time
func (d Day) Time() time.Time {
	return time.Time(d)
}

// AddDays returns the day n days later
func (d Day) AddDays(n int) Day {
	return NewDay(time.Time(d).AddDate(0, 0, n))
}

// Before returns true if d is before u
func (d Day) Before(u Day) bool {
	return time.Time(d).Before(time.Time(u))
}

// After returns true if d is after u
func (d Day) After(u Day) bool {
	return time.Time(d).After(time.Time(u))
}

// Equal returns true if both days are the same calendar day
func (d Day) Equal(u Day) bool {
	return time.Time(d).Equal(time.Time(u))
}

// Weekday returns the day of week
func (d Day) Weekday() time.Weekday {
	return time.Time(d).Weekday()
}

// YearDay returns the day of year in [1,366]
func (d Day) YearDay() int {
	return time.Time(d).YearDay()
}

// DayRange returns count consecutive days starting at start, in chronological
// order. Social follower state accumulates across this sequence, so callers
// must not reorder it.
func DayRange(start time.Time, count int) []Day {
	if count <= 0 {
		return nil
	}
	days := make([]Day, count)
	d := NewDay(start)
	for i := 0; i < count; i++ {
		days[i] = d
		d = d.AddDays(1)
	}
	return days
}

// JSON marshaling for Day
func (d Day) MarshalJSON() ([]byte, error) {
	return time.Time(d).MarshalJSON()
}

func (d *Day) UnmarshalJSON(data []byte) error {
	var tm time.Time
	if err := tm.UnmarshalJSON(data); err != nil {
		return err
	}
	*d = NewDay(tm)
	return nil
}

// String representation
func (d Day) String() string { return time.Time(d).Format("2006-01-02") }
