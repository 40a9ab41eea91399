package dateutil

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time-of-day component. All "which day does
// this record belong to" comparisons in the codebase go through this type so
// that local/UTC drift in stored timestamps cannot change the answer.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// At places a clock time (in loc) on the day.
func (d Date) At(hour, min int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, min, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) Before(u Date) bool { return d.Time().Before(u.Time()) }
func (d Date) After(u Date) bool  { return d.Time().After(u.Time()) }

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// InclusiveDays returns the number of calendar days from start to end,
// counting both endpoints. A leave from the 10th to the 12th is 3 days.
func InclusiveDays(start, end Date) int {
	return int(end.Time().Sub(start.Time())/(24*time.Hour)) + 1
}

// MonthRange returns the first and last day of a month.
func MonthRange(year int, month time.Month) (Date, Date) {
	first := Date{Year: year, Month: month, Day: 1}
	last := DateOf(first.Time().AddDate(0, 1, -1))
	return first, last
}

// DaysInMonth returns the number of calendar days in a month.
func DaysInMonth(year int, month time.Month) int {
	_, last := MonthRange(year, month)
	return last.Day
}

// WorkingDays counts the weekdays (Monday through Friday) in a month.
func WorkingDays(year int, month time.Month) int {
	first, last := MonthRange(year, month)
	count := 0
	for d := first; !d.After(last); d = d.AddDays(1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}
