package exposure

import (
	"github.com/etnz/exposure/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// cmpRecords compares decimals by value and dates by day.
var cmpRecords = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// rec is a compact Record constructor for tests.
func rec(client, stock, product, maturity, amount string) Record {
	return Record{
		Client:   client,
		Stock:    stock,
		Product:  product,
		Maturity: date.MustParse(maturity),
		Amount:   decimal.RequireFromString(amount),
	}
}

// sample is a small book of two clients.
//
//	Alice: BHP 1000 (P1, 2024-01-10) + 3000 (P2, 2024-03-01), CBA 1000 (P3, 2024-01-12)
//	Bob:   CBA 2000 (P3, 2024-01-12), WES 2000 (P4, 2024-02-20)
func sample() []Record {
	return []Record{
		rec("Alice", "BHP", "P1", "2024-01-10", "1000"),
		rec("Alice", "BHP", "P2", "2024-03-01", "3000"),
		rec("Alice", "CBA", "P3", "2024-01-12", "1000"),
		rec("Bob", "CBA", "P3", "2024-01-12", "2000"),
		rec("Bob", "WES", "P4", "2024-02-20", "2000"),
	}
}

func window(from, to string) date.Range {
	return date.Range{From: date.MustParse(from), To: date.MustParse(to)}
}
