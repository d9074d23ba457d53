package dates

import "github.com/shopspring/decimal"

// PeriodProgress returns the fraction of the enclosing period elapsed
// through dt, as an exact ratio of elapsed days over total days. The first
// day of a month yields 1/31-ish, the last day yields 1.
func PeriodProgress(dt Date, freq Frequency) (decimal.Decimal, error) {
	elapsed, err := PeriodRange(dt, freq, false)
	if err != nil {
		return decimal.Zero, err
	}
	full, err := PeriodRange(dt, freq, true)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(int64(elapsed.Len())).
		Div(decimal.NewFromInt(int64(full.Len()))), nil
}
