package schedule

import (
	"fmt"
	"time"
)

// Day identifies a calendar day with no time component. Two stored
// timestamps that a user would read as the same date compare equal as Days
// no matter what time of day, offset or precision they were saved with.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day t falls on in loc. It reads the local
// calendar fields after converting into loc; truncating an epoch instead
// shifts tasks created near midnight onto the neighbouring day.
func DayOf(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}, nil
}

// String renders the day as YYYY-MM-DD.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight of the day in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the day n calendar days later. Arithmetic happens on
// calendar fields, so DST transitions cannot make a day repeat or vanish.
func (d Day) AddDays(n int) Day {
	y, m, dd := d.Time(time.UTC).AddDate(0, 0, n).Date()
	return Day{Year: y, Month: m, Day: dd}
}
