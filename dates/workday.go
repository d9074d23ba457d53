package dates

// =============================================================================
// HOLIDAY CALENDAR - Feeds workday filtering
// =============================================================================

// Holiday is a calendar date that does not count as a workday.
type Holiday struct {
	ID        string
	Date      Date
	Name      string // e.g., "Christmas Day", "Independence Day"
	Recurring bool   // true = same month/day every year
}

// HolidayCalendar provides holiday lookup for workday filtering.
type HolidayCalendar interface {
	IsHoliday(d Date) bool
}

// MapCalendar is an in-memory HolidayCalendar built from a holiday list.
type MapCalendar struct {
	fixed     map[Date]struct{}
	recurring map[monthDay]struct{}
}

type monthDay struct {
	month int
	day   int
}

// NewMapCalendar indexes the given holidays for lookup.
func NewMapCalendar(holidays []Holiday) *MapCalendar {
	c := &MapCalendar{
		fixed:     make(map[Date]struct{}),
		recurring: make(map[monthDay]struct{}),
	}
	for _, h := range holidays {
		if h.Recurring {
			c.recurring[monthDay{int(h.Date.Month()), h.Date.Day()}] = struct{}{}
		} else {
			c.fixed[h.Date] = struct{}{}
		}
	}
	return c
}

func (c *MapCalendar) IsHoliday(d Date) bool {
	if _, ok := c.fixed[d]; ok {
		return true
	}
	_, ok := c.recurring[monthDay{int(d.Month()), d.Day()}]
	return ok
}
