/*
boundary.go - Period boundary resolver

PURPOSE:
  Resolves the first and last calendar day of the period enclosing a given
  date, for each supported frequency. PeriodRange and the frequency-bound
  wrappers delegate here; the resolver owns the boundary conventions.

CONVENTIONS:
  day:     the date itself on both ends
  week:    Monday through Sunday
  month:   first through last day of the month
  quarter: Jan-Mar / Apr-Jun / Jul-Sep / Oct-Dec
  year:    Jan 1 through Dec 31

SEE ALSO:
  - period.go: PeriodRange and the wrappers
*/
package dates

import (
	"fmt"
	"time"
)

// PeriodStart returns the first day of the period of the given frequency
// containing d. A zero d resolves to today.
func PeriodStart(d Date, freq Frequency) (Date, error) {
	d = d.orToday()
	switch freq {
	case FreqDay:
		return d, nil
	case FreqWeek:
		// Monday start; Go's Sunday == 0.
		back := (int(d.Weekday()) + 6) % 7
		return d.AddDays(-back), nil
	case FreqMonth:
		return NewDate(d.Year(), d.Month(), 1), nil
	case FreqQuarter:
		return NewDate(d.Year(), quarterStartMonth(d.Month()), 1), nil
	case FreqYear:
		return NewDate(d.Year(), time.January, 1), nil
	default:
		return Date{}, unknownFrequency(freq)
	}
}

// PeriodEnd returns the last day of the period of the given frequency
// containing d. A zero d resolves to today.
func PeriodEnd(d Date, freq Frequency) (Date, error) {
	d = d.orToday()
	switch freq {
	case FreqDay:
		return d, nil
	case FreqWeek:
		start, _ := PeriodStart(d, FreqWeek)
		return start.AddDays(6), nil
	case FreqMonth:
		return NewDate(d.Year(), d.Month(), 1).AddMonths(1).AddDays(-1), nil
	case FreqQuarter:
		start := NewDate(d.Year(), quarterStartMonth(d.Month()), 1)
		return start.AddMonths(3).AddDays(-1), nil
	case FreqYear:
		return NewDate(d.Year(), time.December, 31), nil
	default:
		return Date{}, unknownFrequency(freq)
	}
}

func quarterStartMonth(m time.Month) time.Month {
	return time.Month((int(m)-1)/3*3 + 1)
}

func unknownFrequency(freq Frequency) error {
	return fmt.Errorf("%w: %q", ErrUnknownFrequency, freq)
}
