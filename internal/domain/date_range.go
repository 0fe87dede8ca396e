package domain

import "time"

// DateRange is a transient query parameter bounding a birth-date search.
// Both bounds are inclusive and independently optional; a nil bound means
// the range is open on that side. DateRange values are never persisted.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// NewDateRange builds a DateRange from optional bounds, normalizing both
// to calendar dates.
func NewDateRange(from, to *time.Time) DateRange {
	r := DateRange{}
	if from != nil {
		f := normalizeDate(*from)
		r.From = &f
	}
	if to != nil {
		t := normalizeDate(*to)
		r.To = &t
	}
	return r
}
