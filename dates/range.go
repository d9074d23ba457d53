package dates

// =============================================================================
// RANGE - The core concept: an inclusive, ascending run of calendar days
// =============================================================================

// Range is an inclusive [Start, End] run of days, always ascending, both
// bounds at midnight. Ranges are values; nothing mutates one after it is
// built, and Days() hands out a fresh slice on every call.
type Range struct {
	Start Date
	End   Date
}

// Contains returns true if the date is within the range [Start, End].
func (r Range) Contains(d Date) bool {
	return d.AfterOrEqual(r.Start) && d.BeforeOrEqual(r.End)
}

// Len returns the number of days in the range.
func (r Range) Len() int {
	return DaysBetween(r.Start, r.End) + 1
}

// Days materializes the range as a slice of consecutive dates.
func (r Range) Days() []Date {
	days := make([]Date, 0, r.Len())
	current := r.Start
	for current.BeforeOrEqual(r.End) {
		days = append(days, current)
		current = current.AddDays(1)
	}
	return days
}

// Workdays returns the days in the range that are neither weekend days nor
// holidays on the given calendar. A nil calendar skips only weekends.
func (r Range) Workdays(cal HolidayCalendar) []Date {
	var days []Date
	current := r.Start
	for current.BeforeOrEqual(r.End) {
		if current.IsWorkday() && (cal == nil || !cal.IsHoliday(current)) {
			days = append(days, current)
		}
		current = current.AddDays(1)
	}
	return days
}

// String returns a string representation of the range.
func (r Range) String() string {
	return "[" + r.Start.String() + ", " + r.End.String() + "]"
}
