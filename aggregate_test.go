package exposure

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func mustFilter(t *testing.T, records []Record, sel Selection) *Filtered {
	t.Helper()
	f, err := Filter(records, sel)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	return f
}

// TestExposures_TwoRows is the reference example: ProdA is opted in as a
// maturity, so it disappears from the future portfolio.
func TestExposures_TwoRows(t *testing.T) {
	records := []Record{
		rec("ClientA", "StockX", "ProdA", "2024-01-10", "1000"),
		rec("ClientA", "StockY", "ProdB", "2024-02-10", "1000"),
	}
	sel := Selection{
		Clients:  All(),
		Stocks:   All(),
		Window:   window("2024-01-01", "2024-02-28"),
		Products: Custom("ProdA"),
	}
	got := Exposures(mustFilter(t, records, sel))
	want := []Exposure{
		{Client: "ClientA", Stock: "StockX", Current: 50, Future: 0},
		{Client: "ClientA", Stock: "StockY", Current: 50, Future: 100},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Exposures() mismatch (-want +got):\n%s", diff)
	}
}

func TestExposures_Sample(t *testing.T) {
	sel := Selection{
		Clients:  All(),
		Stocks:   All(),
		Window:   window("2024-01-01", "2024-01-31"),
		Products: All(), // P1 and P3
	}
	got := Exposures(mustFilter(t, sample(), sel))
	want := []Exposure{
		// Alice: 4000 BHP + 1000 CBA now; 3000 BHP once P1 and P3 are gone.
		{Client: "Alice", Stock: "BHP", Current: 80, Future: 100},
		{Client: "Alice", Stock: "CBA", Current: 20, Future: 0},
		// Bob: 2000 CBA + 2000 WES now; 2000 WES later.
		{Client: "Bob", Stock: "CBA", Current: 50, Future: 0},
		{Client: "Bob", Stock: "WES", Current: 50, Future: 100},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Exposures() mismatch (-want +got):\n%s", diff)
	}
}

func TestExposures_AllMatured(t *testing.T) {
	// Every product of Carol matures: her future total is zero, every future
	// percentage is 0 and none is NaN.
	records := []Record{
		rec("Carol", "BHP", "P1", "2024-01-10", "500"),
		rec("Carol", "CBA", "P2", "2024-01-11", "1500"),
	}
	sel := Selection{Window: window("2024-01-01", "2024-01-31")}
	got := Exposures(mustFilter(t, records, sel))
	want := []Exposure{
		{Client: "Carol", Stock: "BHP", Current: 25, Future: 0},
		{Client: "Carol", Stock: "CBA", Current: 75, Future: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Exposures() mismatch (-want +got):\n%s", diff)
	}
}

func TestExposures_ZeroTotal(t *testing.T) {
	records := []Record{
		rec("Dan", "BHP", "P1", "2024-01-10", "0"),
		rec("Dan", "CBA", "P2", "2024-03-10", "0"),
	}
	sel := Selection{Window: window("2024-01-01", "2024-01-31")}
	for _, e := range Exposures(mustFilter(t, records, sel)) {
		if e.Current != 0 || e.Future != 0 || math.IsNaN(float64(e.Current)) {
			t.Errorf("Exposures() = %+v, want zero percentages for a zero total", e)
		}
	}
}

func TestExposures_Properties(t *testing.T) {
	records := []Record{
		rec("Eve", "A", "P1", "2024-01-02", "1"),
		rec("Eve", "B", "P2", "2024-01-03", "1"),
		rec("Eve", "C", "P3", "2024-05-03", "1"),
		rec("Eve", "C", "P4", "2024-05-04", "0.3333"),
		rec("Fay", "A", "P1", "2024-01-02", "123.45"),
		rec("Fay", "D", "P5", "2024-07-01", "987.65"),
	}
	sel := Selection{Window: window("2024-01-01", "2024-01-31")}
	exposures := Exposures(mustFilter(t, records, sel))

	current := map[string]float64{}
	future := map[string]float64{}
	for _, e := range exposures {
		for _, p := range []Percent{e.Current, e.Future} {
			if p < 0 || p > 100 {
				t.Errorf("%+v out of [0, 100]", e)
			}
			if r := math.Round(float64(p)*100) / 100; !p.Equal(Percent(r)) {
				t.Errorf("%+v not rounded to 2 decimals", e)
			}
		}
		current[e.Client] += float64(e.Current)
		future[e.Client] += float64(e.Future)
	}
	for client, sum := range current {
		if math.Abs(sum-100) > 0.011 {
			t.Errorf("current exposures of %s sum to %v, want 100", client, sum)
		}
	}
	for client, sum := range future {
		if math.Abs(sum-100) > 0.011 {
			t.Errorf("future exposures of %s sum to %v, want 100", client, sum)
		}
	}
}

func TestAggregate(t *testing.T) {
	got := Aggregate(sample(), func(r Record) bool { return r.Stock != "CBA" })
	want := []Share{
		{Client: "Alice", Stock: "BHP", Amount: decimal.NewFromInt(4000), Total: decimal.NewFromInt(4000)},
		{Client: "Bob", Stock: "WES", Amount: decimal.NewFromInt(2000), Total: decimal.NewFromInt(2000)},
	}
	if diff := cmp.Diff(want, got, cmpRecords...); diff != "" {
		t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
	}
	if got := Aggregate(nil, nil); len(got) != 0 {
		t.Errorf("Aggregate(nil) = %v, want nothing", got)
	}
}

func TestExposures_OuterJoin(t *testing.T) {
	// An exposure only present on the current side keeps a 0 future.
	records := []Record{
		rec("Gus", "A", "P1", "2024-01-02", "10"),
		rec("Gus", "B", "P2", "2024-06-02", "30"),
	}
	sel := Selection{Window: window("2024-01-01", "2024-01-31")}
	got := Exposures(mustFilter(t, records, sel))
	if len(got) != 2 {
		t.Fatalf("Exposures() = %v, want both stocks", got)
	}
	if got[0].Stock != "A" || got[0].Future != 0 || got[0].Current != 25 {
		t.Errorf("Exposures()[0] = %+v, want A current 25 future 0", got[0])
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(12.345).String(); got != "12.35%" && got != "12.34%" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
	if got := Percent(-20).SignedString(); got != "-20.00%" {
		t.Errorf("SignedString() = %q, want %q", got, "-20.00%")
	}
	if got := round2(percentOf(decimal.NewFromInt(1), decimal.NewFromInt(3))); got != 33.33 {
		t.Errorf("round2(1/3) = %v, want 33.33", got)
	}
	if got := round2(percentOf(decimal.NewFromInt(2), decimal.NewFromInt(3))); got != 66.67 {
		t.Errorf("round2(2/3) = %v, want 66.67", got)
	}
}
