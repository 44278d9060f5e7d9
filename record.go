package exposure

import (
	"github.com/etnz/exposure/date"
	"github.com/shopspring/decimal"
)

// Record is one exposure row: the amount a client holds in a stock through a
// product maturing on a given day.
type Record struct {
	Client   string          `json:"client"`
	Stock    string          `json:"stock"`
	Product  string          `json:"product"`
	Maturity date.Date       `json:"maturity"`
	Amount   decimal.Decimal `json:"amount"`
}

func recordClient(r Record) string  { return r.Client }
func recordStock(r Record) string   { return r.Stock }
func recordProduct(r Record) string { return r.Product }

// distinct returns the distinct keys of records in order of first appearance.
func distinct(records []Record, key func(Record) string) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, r := range records {
		k := key(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

// Clients returns the distinct client names, in order of first appearance.
func Clients(records []Record) []string { return distinct(records, recordClient) }

// Stocks returns the distinct stock names, in order of first appearance.
func Stocks(records []Record) []string { return distinct(records, recordStock) }

// Products returns the distinct product identifiers, in order of first appearance.
func Products(records []Record) []string { return distinct(records, recordProduct) }

// MaturityRange returns the range from the earliest to the latest maturity.
// It is the zero Range for no records.
func MaturityRange(records []Record) date.Range {
	var r date.Range
	for i, rec := range records {
		if i == 0 {
			r = date.Range{From: rec.Maturity, To: rec.Maturity}
			continue
		}
		r.From = date.Min(r.From, rec.Maturity)
		r.To = date.Max(r.To, rec.Maturity)
	}
	return r
}
