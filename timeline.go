package exposure

import (
	"iter"
	"slices"

	"github.com/etnz/exposure/date"
	"github.com/shopspring/decimal"
)

// Timeline is a dense stock by period matrix of the amounts maturing in each
// period.
type Timeline struct {
	Period date.Period `json:"-"`
	// Stocks lists every stock of the dataset, in order of first appearance.
	Stocks []string `json:"stocks"`
	// Starts lists the first day of every period from the earliest to the
	// latest filtered maturity.
	Starts []date.Date `json:"starts"`
	// Totals[stock][period] is the amount maturing.
	Totals [][]decimal.Decimal `json:"totals"`
}

// TimelineCell is one cell of a Timeline.
type TimelineCell struct {
	Stock string
	Start date.Date
	Total decimal.Decimal
}

// NewTimeline buckets the filtered records by stock and by the period
// containing their maturity.
//
// Rows span every stock of all, so that stocks filtered out still show as
// zeros, and columns every period between the earliest and the latest
// filtered maturity, empty ones included. With no filtered record there is
// no column.
func NewTimeline(all, filtered []Record, period date.Period) *Timeline {
	t := &Timeline{
		Period: period,
		Stocks: Stocks(all),
	}
	if len(filtered) > 0 {
		t.Starts = slices.Collect(MaturityRange(filtered).Starts(period))
	}
	t.Totals = make([][]decimal.Decimal, len(t.Stocks))
	for i := range t.Totals {
		t.Totals[i] = make([]decimal.Decimal, len(t.Starts))
	}

	row := make(map[string]int, len(t.Stocks))
	for i, s := range t.Stocks {
		row[s] = i
	}
	for _, r := range filtered {
		i, ok := row[r.Stock]
		if !ok {
			continue
		}
		j := t.column(r.Maturity)
		t.Totals[i][j] = t.Totals[i][j].Add(r.Amount)
	}
	return t
}

// column returns the index of the period containing d.
func (t *Timeline) column(d date.Date) int {
	j, _ := slices.BinarySearchFunc(t.Starts, d.StartOf(t.Period), date.Date.Compare)
	return j
}

// At returns the amount maturing in the period starting on start, 0 if none.
func (t *Timeline) At(stock string, start date.Date) decimal.Decimal {
	i := slices.Index(t.Stocks, stock)
	j, ok := slices.BinarySearchFunc(t.Starts, start, date.Date.Compare)
	if i < 0 || !ok {
		return decimal.Zero
	}
	return t.Totals[i][j]
}

// Cells iterates over every cell, stock by stock.
func (t *Timeline) Cells() iter.Seq[TimelineCell] {
	return func(yield func(TimelineCell) bool) {
		for i, stock := range t.Stocks {
			for j, start := range t.Starts {
				if !yield(TimelineCell{Stock: stock, Start: start, Total: t.Totals[i][j]}) {
					return
				}
			}
		}
	}
}

// Max returns the largest cell, 0 for an empty timeline.
func (t *Timeline) Max() decimal.Decimal {
	m := decimal.Zero
	for c := range t.Cells() {
		m = decimal.Max(m, c.Total)
	}
	return m
}
