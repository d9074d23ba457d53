/*
errors.go - Centralized error types for the dates package

PURPOSE:
  All error values in one place for consistency and discoverability.
  Callers match with errors.Is(); the API layer uses the helpers below
  to map errors onto HTTP statuses.

ERROR CATEGORIES:
  1. Argument errors  - Invalid builder inputs
  2. Frequency errors - Unrecognized frequency codes

SEE ALSO:
  - span.go: Returns ErrEmptySpan
  - boundary.go: Returns ErrUnknownFrequency
*/
package dates

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEmptySpan is returned when a day span is requested with a day count
	// of zero. A span must cover at least one day in either direction.
	ErrEmptySpan = errors.New("day span must cover at least one day")

	// ErrUnknownFrequency is returned by the period boundary resolver for a
	// frequency code outside {day, week, month, quarter, year}. Builders
	// propagate it unchanged.
	ErrUnknownFrequency = errors.New("unknown frequency")
)

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrEmptySpan) ||
		errors.Is(err, ErrUnknownFrequency)
}
