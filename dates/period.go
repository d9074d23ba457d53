/*
period.go - Period-range builder and frequency-bound wrappers

PURPOSE:
  Materializes the days of the calendar period enclosing a reference date:
  either the whole period, or the period-to-date slice truncated at the
  reference date. Boundary resolution lives in boundary.go; this file only
  assembles ranges from resolved boundaries.

EXAMPLES:
  PeriodRange(2013-09-15, FreqMonth, true)  -> [2013-09-01, 2013-09-30]
  PeriodRange(2013-09-15, FreqMonth, false) -> [2013-09-01, 2013-09-15]

  When the reference date is the first day of its period, the period-to-date
  range degenerates to that single day. That is intended: day one's
  period-to-date is day one.

SEE ALSO:
  - boundary.go: PeriodStart / PeriodEnd
  - span.go: Count-based sibling builder
*/
package dates

// PeriodRange returns the daily range of the period of the given frequency
// containing dt. With fullRange the range runs through the period's last
// day; otherwise it stops at dt (period-to-date). A zero dt resolves to
// today. Resolver errors for unknown frequencies propagate unchanged.
func PeriodRange(dt Date, freq Frequency, fullRange bool) (Range, error) {
	dt = dt.orToday()

	start, err := PeriodStart(dt, freq)
	if err != nil {
		return Range{}, err
	}

	end := dt
	if fullRange {
		if end, err = PeriodEnd(dt, freq); err != nil {
			return Range{}, err
		}
	}

	// dt always falls inside its own period, so start <= end holds.
	return Range{Start: start, End: end}, nil
}

// =============================================================================
// FREQUENCY-BOUND WRAPPERS - Fixed-frequency conveniences, no logic of their own
// =============================================================================

// WeekRange returns the Monday-Sunday week containing dt, or week-to-date.
func WeekRange(dt Date, fullRange bool) (Range, error) {
	return PeriodRange(dt, FreqWeek, fullRange)
}

// MonthRange returns the calendar month containing dt, or month-to-date.
func MonthRange(dt Date, fullRange bool) (Range, error) {
	return PeriodRange(dt, FreqMonth, fullRange)
}

// QuarterRange returns the calendar quarter containing dt, or quarter-to-date.
func QuarterRange(dt Date, fullRange bool) (Range, error) {
	return PeriodRange(dt, FreqQuarter, fullRange)
}

// YearRange returns the calendar year containing dt, or year-to-date.
func YearRange(dt Date, fullRange bool) (Range, error) {
	return PeriodRange(dt, FreqYear, fullRange)
}
