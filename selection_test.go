package exposure

import (
	"slices"
	"testing"

	"github.com/etnz/exposure/date"
)

func TestSelectionQuery_Parse(t *testing.T) {
	today := date.New(2024, 1, 10)
	tests := []struct {
		name   string
		query  SelectionQuery
		window date.Range
	}{
		{"defaults", SelectionQuery{}, window("2024-01-10", "2024-01-24")},
		{"window length", SelectionQuery{WindowDays: 30}, window("2024-01-10", "2024-02-09")},
		{"absolute", SelectionQuery{From: "2024-02-01", To: "2024-02-29"}, window("2024-02-01", "2024-02-29")},
		{"relative", SelectionQuery{From: "-1w", To: "+1m"}, window("2024-01-03", "2024-02-10")},
		{"from only", SelectionQuery{From: "2024-03-01"}, window("2024-03-01", "2024-03-15")},
		{"other today", SelectionQuery{Today: "2024-06-01", From: "0d", To: "+2d"}, window("2024-06-01", "2024-06-03")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := tt.query.Parse(today)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if sel.Window != tt.window {
				t.Errorf("Parse().Window = %v, want %v", sel.Window, tt.window)
			}
		})
	}
}

func TestSelectionQuery_Choices(t *testing.T) {
	sel, err := SelectionQuery{Clients: "Alice,Bob", Stocks: "none"}.Parse(date.New(2024, 1, 10))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := sel.Clients.Values(); !slices.Equal(got, []string{"Alice", "Bob"}) {
		t.Errorf("Clients = %v", got)
	}
	if sel.Stocks.IsAll() || len(sel.Stocks.Values()) != 0 {
		t.Errorf("Stocks = %v, want none", sel.Stocks)
	}
	if !sel.Products.IsAll() {
		t.Errorf("Products = %v, want all", sel.Products)
	}
}

func TestSelectionQuery_InvalidDate(t *testing.T) {
	for _, q := range []SelectionQuery{{From: "soon"}, {To: "13/45/2024"}, {Today: "yesterday"}} {
		if _, err := q.Parse(date.New(2024, 1, 10)); err == nil {
			t.Errorf("Parse(%+v) = nil error, want an error", q)
		}
	}
}
