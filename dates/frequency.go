package dates

import "fmt"

// =============================================================================
// FREQUENCY - Which calendar period boundaries apply
// =============================================================================

// Frequency selects the calendar period granularity for boundary resolution.
type Frequency string

const (
	FreqDay     Frequency = "day"
	FreqWeek    Frequency = "week" // Monday - Sunday
	FreqMonth   Frequency = "month"
	FreqQuarter Frequency = "quarter" // Jan-Mar, Apr-Jun, Jul-Sep, Oct-Dec
	FreqYear    Frequency = "year"
)

// ParseFrequency accepts either the full frequency name or its single-letter
// code ("d", "w", "m", "q", "y").
func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case "d", "day":
		return FreqDay, nil
	case "w", "week":
		return FreqWeek, nil
	case "m", "month":
		return FreqMonth, nil
	case "q", "quarter":
		return FreqQuarter, nil
	case "y", "year":
		return FreqYear, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
	}
}

func (f Frequency) String() string { return string(f) }
