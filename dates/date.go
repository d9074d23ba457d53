package dates

import (
	"time"
)

// =============================================================================
// DATE - Day-granularity calendar value (this IS a calendar system)
// =============================================================================

// Date is a calendar date with day granularity. The underlying time is
// always UTC midnight; any time-of-day fed into a constructor is dropped.
// The zero Date is "unset" and resolves to Today() inside the builders.
type Date struct {
	t time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime normalizes an arbitrary timestamp to a Date at midnight.
func FromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current wall-clock date.
func Today() Date {
	return FromTime(time.Now())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return FromTime(d.t.AddDate(0, 0, n)) }
func (d Date) AddMonths(n int) Date { return FromTime(d.t.AddDate(0, n, 0)) }
func (d Date) AddYears(n int) Date  { return FromTime(d.t.AddDate(n, 0, 0)) }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Time() time.Time       { return d.t }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) IsWorkday() bool { return !d.IsWeekend() }

func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// ParseDate parses a 2006-01-02 date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return FromTime(t), nil
}

// DaysBetween returns the signed number of days from one date to another.
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

// orToday resolves the zero Date to the current wall-clock date. Builders
// call this so that an omitted anchor/reference means "now" while explicit
// dates keep calls fully deterministic.
func (d Date) orToday() Date {
	if d.IsZero() {
		return Today()
	}
	return d
}
