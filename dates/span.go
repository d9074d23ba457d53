/*
span.go - Day-span builder

PURPOSE:
  Builds a contiguous run of days anchored at a date. The day count sets
  both the direction and the length of the span: positive counts forward
  from the anchor, negative counts backward.

SEMANTICS:
  DaySpan(6,  2013-09-05, inclusive) -> [2013-09-05, 2013-09-10]
  DaySpan(-6, 2013-09-05, exclusive) -> [2013-08-30, 2013-09-04]

  Inclusive spans contain the anchor; exclusive spans shift one day off
  the anchor in the direction of travel, so the anchor never appears.
  The result is always ascending regardless of direction.

SEE ALSO:
  - range.go: The Range type returned here
*/
package dates

// DaySpan returns the range covering numDays consecutive days measured from
// anchor. numDays must be non-zero; its sign picks the direction. A zero
// anchor resolves to today. With inclusive=false the anchor is excluded and
// the span sits entirely beyond it.
func DaySpan(numDays int, anchor Date, inclusive bool) (Range, error) {
	if numDays == 0 {
		return Range{}, ErrEmptySpan
	}

	anchor = anchor.orToday()

	shift := 1
	if numDays < 0 {
		shift = -1
	}

	swing := anchor.AddDays(numDays - shift)

	if !inclusive {
		anchor = anchor.AddDays(shift)
		swing = swing.AddDays(shift)
	}

	if anchor.After(swing) {
		anchor, swing = swing, anchor
	}

	return Range{Start: anchor, End: swing}, nil
}
