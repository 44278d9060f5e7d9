package date

import (
	"fmt"
	"iter"
)

// Range represents a range of dates, boundaries included.
type Range struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// NewRange returns the range of the period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Days returns the range of n days starting on from. n is usually positive, but
// a negative n extends backwards.
func Days(from Date, n int) Range {
	if n < 0 {
		return Range{From: from.Add(n), To: from}
	}
	return Range{From: from, To: from.Add(n)}
}

// Contains return true date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsValid reports whether From is not after To.
func (r Range) IsValid() bool { return !r.From.After(r.To) }

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }

// Starts iterates over the start of every period overlapping the range, from
// the period containing From up to the period containing To.
func (r Range) Starts(period Period) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if !r.IsValid() {
			return
		}
		last := r.To.StartOf(period)
		for d := r.From.StartOf(period); !d.After(last); d = d.Next(period) {
			if !yield(d) {
				return
			}
		}
	}
}
