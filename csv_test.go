package exposure

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestEncodeCSV(t *testing.T) {
	exposures := []Exposure{
		{Client: "ClientA", Stock: "StockX", Current: 50, Future: 0},
		{Client: "ClientA", Stock: "StockY", Current: 50, Future: 100},
		{Client: "ClientB", Stock: "Rio, Tinto", Current: 33.33, Future: 66.67},
	}
	var b bytes.Buffer
	if err := EncodeCSV(&b, exposures); err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}
	want := strings.Join([]string{
		"Name,Current Exposure %,Future Exposure %",
		"StockX,50.0,0.0",
		"StockY,50.0,100.0",
		`"Rio, Tinto",33.33,66.67`,
		"",
	}, "\n")
	if got := b.String(); got != want {
		t.Errorf("EncodeCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeCSV_Empty(t *testing.T) {
	var b bytes.Buffer
	if err := EncodeCSV(&b, nil); err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}
	if got, want := b.String(), "Name,Current Exposure %,Future Exposure %\n"; got != want {
		t.Errorf("EncodeCSV(nil) = %q, want %q", got, want)
	}
}

func TestFormatFloat(t *testing.T) {
	for in, want := range map[Percent]string{
		0:     "0.0",
		50:    "50.0",
		12.5:  "12.5",
		33.33: "33.33",
		-1.25: "-1.25",
	} {
		if got := formatFloat(in); got != want {
			t.Errorf("formatFloat(%v) = %q, want %q", float64(in), got, want)
		}
	}
}

func TestCSVCache(t *testing.T) {
	c := NewCSVCache(2)
	a := []Exposure{{Client: "A", Stock: "X", Current: 100, Future: 100}}
	b := []Exposure{{Client: "B", Stock: "Y", Current: 100}}

	first, err := c.Encode(a)
	if err != nil {
		t.Fatal(err)
	}
	again, _ := c.Encode(a)
	if !bytes.Equal(first, again) {
		t.Errorf("Encode() = %q then %q", first, again)
	}
	// Only the exported columns matter: another client with the same row hits.
	if _, err := c.Encode([]Exposure{{Client: "Z", Stock: "X", Current: 100, Future: 100}}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Encode(b); err != nil {
		t.Fatal(err)
	}
	if hits, misses := c.Stats(); hits != 2 || misses != 2 {
		t.Errorf("Stats() = %d hits %d misses, want 2 and 2", hits, misses)
	}
}

func TestCSVCache_Concurrent(t *testing.T) {
	c := NewCSVCache(0)
	tables := [][]Exposure{
		{{Stock: "X", Current: 10, Future: 20}},
		{{Stock: "Y", Current: 30, Future: 40}},
	}
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Encode(tables[i%2]); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if hits, misses := c.Stats(); hits+misses != 20 || misses != 2 {
		t.Errorf("Stats() = %d hits %d misses, want 18 and 2", hits, misses)
	}
}
