package renderer

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/exposure"
	"github.com/etnz/exposure/date"
	"github.com/shopspring/decimal"
)

// twoRowReport is the report of one client holding two stocks, the first
// one maturing and opted in.
func twoRowReport(t *testing.T) *exposure.Report {
	t.Helper()
	records := []exposure.Record{
		{Client: "ClientA", Stock: "StockX", Product: "ProdA", Maturity: date.New(2024, 1, 10), Amount: decimal.NewFromInt(1000)},
		{Client: "ClientA", Stock: "StockY", Product: "ProdB", Maturity: date.New(2024, 2, 10), Amount: decimal.NewFromInt(1000)},
	}
	sel := exposure.Selection{
		Window:   date.Range{From: date.New(2024, 1, 1), To: date.New(2024, 2, 28)},
		Products: exposure.Custom("ProdA"),
	}
	r, err := exposure.NewDashboard(records).Report(context.Background(), sel)
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	return r
}

func TestExposureMarkdown(t *testing.T) {
	got := ExposureMarkdown(twoRowReport(t))
	want := "### All Clients Exposure after Upcoming Maturities (2024-01-01 to 2024-02-28)\n" +
		"\n" +
		"| Name | Current Exposure % | Future Exposure % |\n" +
		"|:---|---:|---:|\n" +
		"| StockX | 50.00% | 0.00% |\n" +
		"| StockY | 50.00% | 100.00% |\n" +
		"\n"
	if got != want {
		t.Errorf("ExposureMarkdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestHeatmapMarkdown(t *testing.T) {
	r := twoRowReport(t)
	got := HeatmapMarkdown("Future Exposure", r.Future)
	want := "#### Future Exposure\n" +
		"\n" +
		"| Stock | ClientA |\n" +
		"|:---|---:|\n" +
		"| StockX | 0.00% |\n" +
		"| StockY | 100.00% |\n" +
		"\n"
	if got != want {
		t.Errorf("HeatmapMarkdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestTimelineMarkdown(t *testing.T) {
	r := twoRowReport(t)
	got := TimelineMarkdown(r.Timeline, Options{})
	for _, want := range []string{
		"| Stock | 2024-01-08 | 2024-01-15 | 2024-01-22 | 2024-01-29 | 2024-02-05 |",
		"| StockX | $1,000.00 | $0.00 | $0.00 | $0.00 | $0.00 |",
		"| StockY | $0.00 | $0.00 | $0.00 | $0.00 | $1,000.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("TimelineMarkdown() =\n%s\nwant a line %q", got, want)
		}
	}

	empty := &exposure.Timeline{Stocks: []string{"StockX"}, Totals: [][]decimal.Decimal{{}}}
	if got := TimelineMarkdown(empty, Options{}); !strings.Contains(got, "No maturity") {
		t.Errorf("TimelineMarkdown(empty) = %q", got)
	}
}

func TestScatterMarkdown(t *testing.T) {
	r := twoRowReport(t)
	got := ScatterMarkdown(r.Scatter, Options{})
	for _, want := range []string{
		"| ClientA | StockX | 2024-01-10 | $1,000.00 | 50.00% | 0.00% |",
		"| ClientA | StockX | 2024-02-10 | $0.00 | 50.00% | 0.00% |",
		"| ClientA | StockY | 2024-02-10 | $1,000.00 | 50.00% | 100.00% |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ScatterMarkdown() =\n%s\nwant a line %q", got, want)
		}
	}
}

func TestMaturitiesMarkdown(t *testing.T) {
	w := date.Range{From: date.New(2024, 1, 1), To: date.New(2024, 1, 14)}
	got := MaturitiesMarkdown(w, []string{"P1", "P2"}, []string{"P2"})
	want := "### Upcoming Maturities (2024-01-01 to 2024-01-14)\n" +
		"\n" +
		"- [ ] P1\n" +
		"- [x] P2\n" +
		"\n"
	if got != want {
		t.Errorf("MaturitiesMarkdown() =\n%s\nwant\n%s", got, want)
	}
	if got := MaturitiesMarkdown(w, nil, nil); !strings.Contains(got, "No product matures") {
		t.Errorf("MaturitiesMarkdown(nothing) = %q", got)
	}
}

func TestDashboardMarkdown(t *testing.T) {
	r := twoRowReport(t)
	got := DashboardMarkdown(r, Options{
		Adviser: "Jane Doe Advisory",
		Charts:  map[string]string{"current": "/charts/current.png"},
	})
	for _, want := range []string{
		"# Jane Doe Advisory\n",
		"### All Clients Exposure after Upcoming Maturities",
		"- [x] ProdA",
		"- [ ] ProdB",
		"#### Current Exposure",
		"#### Future Exposure",
		"## Maturity Timeline (weekly)",
		"![Current Exposure](/charts/current.png)",
		"| ClientA | StockY | 2024-02-10 | $1,000.00 | 50.00% | 100.00% |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DashboardMarkdown() =\n%s\nwant %q", got, want)
		}
	}
	if strings.Contains(got, "![Future Exposure]") {
		t.Errorf("DashboardMarkdown() links a chart without URL:\n%s", got)
	}
	if strings.Contains(got, "error ") {
		t.Errorf("DashboardMarkdown() failed:\n%s", got)
	}
	if got := DashboardMarkdown(r, Options{}); !strings.HasPrefix(got, "# "+DefaultAdviser) {
		t.Errorf("DashboardMarkdown() heading = %q, want the default", strings.SplitN(got, "\n", 2)[0])
	}
}

func TestDashboardHTML(t *testing.T) {
	got, err := DashboardHTML(twoRowReport(t), Options{Adviser: "Smith & Co"})
	if err != nil {
		t.Fatalf("DashboardHTML() error = %v", err)
	}
	for _, want := range []string{
		"<title>Smith &amp; Co</title>",
		"<table>",
		"StockX",
		"<h1>Smith &amp; Co</h1>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DashboardHTML() does not contain %q:\n%s", want, got)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"1234.5", "USD", "$1,234.50"},
		{"0", "USD", "$0.00"},
		{"1000000", "USD", "$1,000,000.00"},
		{"0.005", "USD", "$0.01"},
	}
	for _, tt := range tests {
		if got := FormatAmount(decimal.RequireFromString(tt.amount), tt.currency); got != tt.want {
			t.Errorf("FormatAmount(%s, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}
