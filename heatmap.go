package exposure

import (
	"slices"
)

// Heatmap is a dense stock by client matrix of percentages.
type Heatmap struct {
	Stocks  []string    `json:"stocks"`
	Clients []string    `json:"clients"`
	Values  [][]Percent `json:"values"` // Values[stock][client]
}

// NewHeatmap pivots exposures into a heatmap of the percentage picked by
// pick. Both axes are sorted; missing cells are 0. For a repeated (client,
// stock) the first exposure wins.
func NewHeatmap(exposures []Exposure, pick func(Exposure) Percent) *Heatmap {
	h := &Heatmap{}
	for _, e := range exposures {
		if !slices.Contains(h.Stocks, e.Stock) {
			h.Stocks = append(h.Stocks, e.Stock)
		}
		if !slices.Contains(h.Clients, e.Client) {
			h.Clients = append(h.Clients, e.Client)
		}
	}
	slices.Sort(h.Stocks)
	slices.Sort(h.Clients)

	h.Values = make([][]Percent, len(h.Stocks))
	seen := make([][]bool, len(h.Stocks))
	for i := range h.Values {
		h.Values[i] = make([]Percent, len(h.Clients))
		seen[i] = make([]bool, len(h.Clients))
	}
	for _, e := range exposures {
		i, _ := slices.BinarySearch(h.Stocks, e.Stock)
		j, _ := slices.BinarySearch(h.Clients, e.Client)
		if seen[i][j] {
			continue
		}
		seen[i][j] = true
		h.Values[i][j] = pick(e)
	}
	return h
}

// At returns the value of a cell, 0 outside of the matrix.
func (h *Heatmap) At(stock, client string) Percent {
	i, ok := slices.BinarySearch(h.Stocks, stock)
	if !ok {
		return 0
	}
	j, ok := slices.BinarySearch(h.Clients, client)
	if !ok {
		return 0
	}
	return h.Values[i][j]
}
