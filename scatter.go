package exposure

import (
	"github.com/etnz/exposure/date"
	"github.com/shopspring/decimal"
)

// ScatterPoint is one client exposure to a stock at a maturity date.
type ScatterPoint struct {
	Client   string          `json:"client"`
	Stock    string          `json:"stock"`
	Maturity date.Date       `json:"maturity"`
	Amount   decimal.Decimal `json:"amount"`
	Current  Percent         `json:"current"`
	Future   Percent         `json:"future"`
}

// NewScatter lists a point for every selected client, selected stock and
// maturity date of the filtered records.
//
// A combination matching several records gives one point per record; one
// matching none gives a single point of amount 0. Each point carries the
// exposure percentages of its (client, stock), 0 when there is none.
func NewScatter(f *Filtered, exposures []Exposure) []ScatterPoint {
	type key struct {
		client, stock string
		maturity      date.Date
	}
	amounts := make(map[key][]decimal.Decimal)
	var maturities []date.Date
	seen := make(map[date.Date]bool)
	for _, r := range f.Records {
		k := key{r.Client, r.Stock, r.Maturity}
		amounts[k] = append(amounts[k], r.Amount)
		if !seen[r.Maturity] {
			seen[r.Maturity] = true
			maturities = append(maturities, r.Maturity)
		}
	}
	pcts := make(map[pair]Exposure, len(exposures))
	for _, e := range exposures {
		if _, ok := pcts[pair{e.Client, e.Stock}]; !ok {
			pcts[pair{e.Client, e.Stock}] = e
		}
	}

	points := make([]ScatterPoint, 0, len(f.Clients)*len(f.Stocks)*len(maturities))
	for _, client := range f.Clients {
		for _, stock := range f.Stocks {
			e := pcts[pair{client, stock}]
			for _, m := range maturities {
				p := ScatterPoint{Client: client, Stock: stock, Maturity: m, Current: e.Current, Future: e.Future}
				found := amounts[key{client, stock, m}]
				if len(found) == 0 {
					p.Amount = decimal.Zero
					points = append(points, p)
					continue
				}
				for _, amount := range found {
					p.Amount = amount
					points = append(points, p)
				}
			}
		}
	}
	return points
}
