package exposure

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewHeatmap(t *testing.T) {
	exposures := []Exposure{
		{Client: "Bob", Stock: "WES", Current: 50, Future: 100},
		{Client: "Alice", Stock: "CBA", Current: 20},
		{Client: "Alice", Stock: "BHP", Current: 80, Future: 100},
		{Client: "Bob", Stock: "CBA", Current: 50},
		{Client: "Bob", Stock: "WES", Current: 99}, // ignored, first wins
	}
	got := NewHeatmap(exposures, CurrentPercent)
	want := &Heatmap{
		Stocks:  []string{"BHP", "CBA", "WES"},
		Clients: []string{"Alice", "Bob"},
		Values: [][]Percent{
			{80, 0},
			{20, 50},
			{0, 50},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewHeatmap() mismatch (-want +got):\n%s", diff)
	}

	future := NewHeatmap(exposures, FuturePercent)
	if got := future.At("WES", "Bob"); got != 100 {
		t.Errorf("At(WES, Bob) = %v, want 100", got)
	}
	if got := future.At("WES", "Alice"); got != 0 {
		t.Errorf("At(WES, Alice) = %v, want 0 for a missing cell", got)
	}
	if got := future.At("XYZ", "Alice"); got != 0 {
		t.Errorf("At(XYZ, Alice) = %v, want 0 outside of the matrix", got)
	}
}

func TestNewHeatmap_Empty(t *testing.T) {
	h := NewHeatmap(nil, CurrentPercent)
	if len(h.Stocks) != 0 || len(h.Clients) != 0 || len(h.Values) != 0 {
		t.Errorf("NewHeatmap(nil) = %+v, want an empty matrix", h)
	}
}
