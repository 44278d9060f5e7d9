package exposure

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// Share is the amount a client holds in a stock, next to the client's total.
type Share struct {
	Client string
	Stock  string
	Amount decimal.Decimal
	Total  decimal.Decimal
}

// Percent returns the share of the client's total, 0 if that total is zero.
func (s Share) Percent() decimal.Decimal { return percentOf(s.Amount, s.Total) }

type pair struct{ client, stock string }

func comparePairs(a, b pair) int {
	return cmp.Or(cmp.Compare(a.client, b.client), cmp.Compare(a.stock, b.stock))
}

// Aggregate sums the amounts of the included records per (client, stock) and
// per client. A nil include keeps every record.
//
// Shares are sorted by client then stock.
func Aggregate(records []Record, include func(Record) bool) []Share {
	amounts := make(map[pair]decimal.Decimal)
	totals := make(map[string]decimal.Decimal)
	for _, r := range records {
		if include != nil && !include(r) {
			continue
		}
		k := pair{r.Client, r.Stock}
		amounts[k] = amounts[k].Add(r.Amount)
		totals[r.Client] = totals[r.Client].Add(r.Amount)
	}

	keys := make([]pair, 0, len(amounts))
	for k := range amounts {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, comparePairs)

	shares := make([]Share, 0, len(keys))
	for _, k := range keys {
		shares = append(shares, Share{
			Client: k.client,
			Stock:  k.stock,
			Amount: amounts[k],
			Total:  totals[k.client],
		})
	}
	return shares
}

// Exposure is a stock's share of a client's portfolio, now and once the
// opted-in maturities have rolled off.
type Exposure struct {
	Client  string  `json:"client"`
	Stock   string  `json:"stock"`
	Current Percent `json:"current"`
	Future  Percent `json:"future"`
}

// CurrentPercent picks Exposure.Current.
func CurrentPercent(e Exposure) Percent { return e.Current }

// FuturePercent picks Exposure.Future.
func FuturePercent(e Exposure) Percent { return e.Future }

// Exposures computes the current and future exposure of every (client, stock)
// of the filtered records.
//
// The future portfolio excludes the records whose product is in f.Included: a
// product opted in as an upcoming maturity no longer counts once matured. A
// pair present on one side only gets 0 on the other. Percentages are rounded
// to two decimals. The result is sorted by client then stock.
func Exposures(f *Filtered) []Exposure {
	current := Aggregate(f.Records, nil)
	future := Aggregate(f.Records, func(r Record) bool { return !f.IsIncluded(r.Product) })

	// Both sides are sorted the same way, merge them.
	exposures := make([]Exposure, 0, max(len(current), len(future)))
	i, j := 0, 0
	for i < len(current) || j < len(future) {
		var c int
		switch {
		case i == len(current):
			c = 1
		case j == len(future):
			c = -1
		default:
			c = comparePairs(pair{current[i].Client, current[i].Stock}, pair{future[j].Client, future[j].Stock})
		}
		switch {
		case c < 0:
			s := current[i]
			exposures = append(exposures, Exposure{Client: s.Client, Stock: s.Stock, Current: round2(s.Percent())})
			i++
		case c > 0:
			s := future[j]
			exposures = append(exposures, Exposure{Client: s.Client, Stock: s.Stock, Future: round2(s.Percent())})
			j++
		default:
			s, t := current[i], future[j]
			exposures = append(exposures, Exposure{
				Client:  s.Client,
				Stock:   s.Stock,
				Current: round2(s.Percent()),
				Future:  round2(t.Percent()),
			})
			i++
			j++
		}
	}
	return exposures
}
