package dates_test

import (
	"testing"
	"time"

	"github.com/warp/calendar-engine/dates"
)

func TestWorkdays_SkipsWeekends(t *testing.T) {
	// GIVEN: A full week, Monday through Sunday
	// WHEN: Filtering workdays with no holiday calendar
	// THEN: Only Monday-Friday remain

	week, err := dates.WeekRange(dates.NewDate(2024, time.April, 3), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	workdays := week.Workdays(nil)
	if len(workdays) != 5 {
		t.Fatalf("expected 5 workdays, got %d", len(workdays))
	}
	for _, day := range workdays {
		if day.IsWeekend() {
			t.Errorf("weekend day %s in workday list", day)
		}
	}
}

func TestWorkdays_SkipsHolidays(t *testing.T) {
	// GIVEN: December 2024 with a fixed and a recurring holiday
	// WHEN: Filtering workdays
	// THEN: Both holidays are excluded

	cal := dates.NewMapCalendar([]dates.Holiday{
		{Date: dates.NewDate(2024, time.December, 26), Name: "Boxing Day"},
		{Date: dates.NewDate(2000, time.December, 25), Name: "Christmas Day", Recurring: true},
	})

	month, err := dates.MonthRange(dates.NewDate(2024, time.December, 10), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, day := range month.Workdays(cal) {
		if day.Day() == 25 || day.Day() == 26 {
			t.Errorf("holiday %s in workday list", day)
		}
	}
}

func TestMapCalendar_RecurringMatchesAnyYear(t *testing.T) {
	cal := dates.NewMapCalendar([]dates.Holiday{
		{Date: dates.NewDate(2020, time.July, 4), Name: "Independence Day", Recurring: true},
	})

	if !cal.IsHoliday(dates.NewDate(2031, time.July, 4)) {
		t.Error("recurring holiday should match in any year")
	}
	if cal.IsHoliday(dates.NewDate(2031, time.July, 5)) {
		t.Error("non-holiday matched")
	}
}
