package folioview

import "time"

// Range represents an inclusive range of dates.
//
// The zero Range means "full available span": it contains every date. A zero
// From (resp. To) bound alone is treated as unbounded on that side.
type Range struct{ From, To Date }

// NewRange returns the range [from, to], both included.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// IsZero reports whether the range is the full-span zero value.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains reports whether date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// YearToDate returns the range from January 1 of the current year to the
// latest available date across the loaded series.
func YearToDate(latest Date) Range {
	return Range{From: NewDate(Today().Year(), time.January, 1), To: latest}
}
