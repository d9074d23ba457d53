package dates_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/dates"
)

// =============================================================================
// BOUNDARY RESOLVER TESTS
// =============================================================================

func TestPeriodBoundaries(t *testing.T) {
	ref := d(2013, time.September, 15) // a Sunday

	tests := []struct {
		name  string
		freq  dates.Frequency
		start dates.Date
		end   dates.Date
	}{
		{"day", dates.FreqDay, ref, ref},
		{"week", dates.FreqWeek, d(2013, time.September, 9), d(2013, time.September, 15)},
		{"month", dates.FreqMonth, d(2013, time.September, 1), d(2013, time.September, 30)},
		{"quarter", dates.FreqQuarter, d(2013, time.July, 1), d(2013, time.September, 30)},
		{"year", dates.FreqYear, d(2013, time.January, 1), d(2013, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := dates.PeriodStart(ref, tt.freq)
			require.NoError(t, err)
			end, err := dates.PeriodEnd(ref, tt.freq)
			require.NoError(t, err)

			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestPeriodBoundaries_WeekStartsMonday(t *testing.T) {
	// Every day of one week resolves to the same Monday.
	monday := d(2024, time.April, 1)
	for i := 0; i < 7; i++ {
		start, err := dates.PeriodStart(monday.AddDays(i), dates.FreqWeek)
		require.NoError(t, err)
		assert.Equal(t, monday, start, "offset %d", i)
	}
}

func TestPeriodBoundaries_LeapFebruary(t *testing.T) {
	end, err := dates.PeriodEnd(d(2024, time.February, 10), dates.FreqMonth)
	require.NoError(t, err)
	assert.Equal(t, d(2024, time.February, 29), end)

	end, err = dates.PeriodEnd(d(2023, time.February, 10), dates.FreqMonth)
	require.NoError(t, err)
	assert.Equal(t, d(2023, time.February, 28), end)
}

func TestPeriodBoundaries_UnknownFrequency(t *testing.T) {
	_, err := dates.PeriodStart(d(2024, time.May, 1), dates.Frequency("fortnight"))
	assert.ErrorIs(t, err, dates.ErrUnknownFrequency)

	_, err = dates.PeriodEnd(d(2024, time.May, 1), dates.Frequency("fortnight"))
	assert.ErrorIs(t, err, dates.ErrUnknownFrequency)
}

// =============================================================================
// PERIOD RANGE TESTS
// =============================================================================

func TestPeriodRange_FullMonth(t *testing.T) {
	r, err := dates.PeriodRange(d(2013, time.September, 15), dates.FreqMonth, true)
	require.NoError(t, err)

	assert.Equal(t, d(2013, time.September, 1), r.Start)
	assert.Equal(t, d(2013, time.September, 30), r.End)
	assert.Equal(t, 30, r.Len())
	assert.True(t, r.Contains(d(2013, time.September, 15)))
}

func TestPeriodRange_MonthToDate(t *testing.T) {
	r, err := dates.PeriodRange(d(2013, time.September, 15), dates.FreqMonth, false)
	require.NoError(t, err)

	assert.Equal(t, d(2013, time.September, 1), r.Start)
	assert.Equal(t, d(2013, time.September, 15), r.End)
	assert.Equal(t, 15, r.Len())
}

func TestPeriodRange_ToDateOnFirstDay(t *testing.T) {
	// Period-to-date on the period's first day degenerates to one day.
	r, err := dates.PeriodRange(d(2013, time.September, 1), dates.FreqMonth, false)
	require.NoError(t, err)

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, d(2013, time.September, 1), r.Start)
	assert.Equal(t, d(2013, time.September, 1), r.End)
}

func TestPeriodRange_StartsAndEndsOnResolverBoundaries(t *testing.T) {
	ref := d(2022, time.November, 18)
	for _, freq := range []dates.Frequency{
		dates.FreqDay, dates.FreqWeek, dates.FreqMonth, dates.FreqQuarter, dates.FreqYear,
	} {
		r, err := dates.PeriodRange(ref, freq, true)
		require.NoError(t, err)

		start, err := dates.PeriodStart(ref, freq)
		require.NoError(t, err)
		end, err := dates.PeriodEnd(ref, freq)
		require.NoError(t, err)

		assert.Equal(t, start, r.Start, "freq=%s", freq)
		assert.Equal(t, end, r.End, "freq=%s", freq)
		assert.True(t, r.Contains(ref), "freq=%s", freq)
	}
}

func TestPeriodRange_UnknownFrequencyPropagates(t *testing.T) {
	_, err := dates.PeriodRange(d(2024, time.May, 1), dates.Frequency("x"), true)
	assert.ErrorIs(t, err, dates.ErrUnknownFrequency)
}

func TestPeriodRange_Idempotent(t *testing.T) {
	a, err := dates.PeriodRange(d(2020, time.February, 20), dates.FreqQuarter, true)
	require.NoError(t, err)
	b, err := dates.PeriodRange(d(2020, time.February, 20), dates.FreqQuarter, true)
	require.NoError(t, err)

	assert.Equal(t, a.Days(), b.Days())
}

// =============================================================================
// WRAPPER TESTS
// =============================================================================

func TestFrequencyWrappers(t *testing.T) {
	ref := d(2013, time.September, 15)

	week, err := dates.WeekRange(ref, true)
	require.NoError(t, err)
	assert.Equal(t, d(2013, time.September, 9), week.Start)
	assert.Equal(t, d(2013, time.September, 15), week.End)

	month, err := dates.MonthRange(ref, true)
	require.NoError(t, err)
	assert.Equal(t, d(2013, time.September, 1), month.Start)
	assert.Equal(t, d(2013, time.September, 30), month.End)

	quarter, err := dates.QuarterRange(ref, true)
	require.NoError(t, err)
	assert.Equal(t, d(2013, time.July, 1), quarter.Start)
	assert.Equal(t, d(2013, time.September, 30), quarter.End)

	year, err := dates.YearRange(ref, false)
	require.NoError(t, err)
	assert.Equal(t, d(2013, time.January, 1), year.Start)
	assert.Equal(t, ref, year.End)
}

// =============================================================================
// FREQUENCY PARSING
// =============================================================================

func TestParseFrequency(t *testing.T) {
	for in, want := range map[string]dates.Frequency{
		"d": dates.FreqDay, "day": dates.FreqDay,
		"w": dates.FreqWeek, "week": dates.FreqWeek,
		"m": dates.FreqMonth, "month": dates.FreqMonth,
		"q": dates.FreqQuarter, "quarter": dates.FreqQuarter,
		"y": dates.FreqYear, "year": dates.FreqYear,
	} {
		got, err := dates.ParseFrequency(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := dates.ParseFrequency("biweekly")
	assert.ErrorIs(t, err, dates.ErrUnknownFrequency)
}

// =============================================================================
// PERIOD PROGRESS
// =============================================================================

func TestPeriodProgress(t *testing.T) {
	// Mid-September: 15 of 30 days elapsed.
	p, err := dates.PeriodProgress(d(2013, time.September, 15), dates.FreqMonth)
	require.NoError(t, err)
	assert.True(t, p.Equal(decimal.NewFromFloat(0.5)), "got %s", p)

	// Last day of the period is fully elapsed.
	p, err = dates.PeriodProgress(d(2013, time.December, 31), dates.FreqYear)
	require.NoError(t, err)
	assert.True(t, p.Equal(decimal.NewFromInt(1)), "got %s", p)

	_, err = dates.PeriodProgress(d(2013, time.December, 31), dates.Frequency("x"))
	assert.ErrorIs(t, err, dates.ErrUnknownFrequency)
}
