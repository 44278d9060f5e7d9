package exposure

import (
	"testing"

	"github.com/etnz/exposure/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestNewScatter(t *testing.T) {
	sel := Selection{
		Clients:  Custom("Bob"),
		Stocks:   Custom("CBA", "WES"),
		Window:   window("2024-01-01", "2024-01-31"),
		Products: All(),
	}
	f := mustFilter(t, sample(), sel)
	exposures := Exposures(f)
	got := NewScatter(f, exposures)

	d1, d2 := date.New(2024, 1, 12), date.New(2024, 2, 20)
	want := []ScatterPoint{
		{Client: "Bob", Stock: "CBA", Maturity: d1, Amount: decimal.NewFromInt(2000), Current: 50},
		{Client: "Bob", Stock: "CBA", Maturity: d2, Amount: decimal.Zero, Current: 50},
		{Client: "Bob", Stock: "WES", Maturity: d1, Amount: decimal.Zero, Current: 50, Future: 100},
		{Client: "Bob", Stock: "WES", Maturity: d2, Amount: decimal.NewFromInt(2000), Current: 50, Future: 100},
	}
	if diff := cmp.Diff(want, got, cmpRecords...); diff != "" {
		t.Errorf("NewScatter() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewScatter_RepeatedRows(t *testing.T) {
	records := []Record{
		rec("Ann", "BHP", "P1", "2024-01-10", "100"),
		rec("Ann", "BHP", "P2", "2024-01-10", "300"),
	}
	f := mustFilter(t, records, Selection{Window: window("2024-01-01", "2024-01-31")})
	got := NewScatter(f, Exposures(f))
	if len(got) != 2 {
		t.Fatalf("NewScatter() = %v, want one point per matching record", got)
	}
	if !got[0].Amount.Equal(decimal.NewFromInt(100)) || !got[1].Amount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("NewScatter() amounts = %v, %v, want 100, 300", got[0].Amount, got[1].Amount)
	}
}
