package date

import (
	"slices"
	"testing"
	"time"
)

func TestStartOf(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Date
	}{
		{"Daily", New(2024, time.January, 10), Daily, New(2024, time.January, 10)},
		{"A Wednesday", New(2024, time.January, 10), Weekly, New(2024, time.January, 8)},
		{"A Monday", New(2024, time.January, 8), Weekly, New(2024, time.January, 8)},
		{"A Sunday", New(2024, time.January, 14), Weekly, New(2024, time.January, 8)},
		{"Across years", New(2025, time.January, 1), Weekly, New(2024, time.December, 30)},
		{"Monthly", New(2024, time.February, 29), Monthly, New(2024, time.February, 1)},
		{"Q3", New(2024, time.August, 20), Quarterly, New(2024, time.July, 1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.StartOf(tc.period); got != tc.want {
				t.Errorf("StartOf(%v) = %v, want %v", tc.period, got, tc.want)
			}
		})
	}
}

func TestEndOf(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Date
	}{
		{"Week", New(2024, time.January, 10), Weekly, New(2024, time.January, 14)},
		{"Leap month", New(2024, time.February, 10), Monthly, New(2024, time.February, 29)},
		{"Q4", New(2024, time.November, 2), Quarterly, New(2024, time.December, 31)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.EndOf(tc.period); got != tc.want {
				t.Errorf("EndOf(%v) = %v, want %v", tc.period, got, tc.want)
			}
		})
	}
}

func TestRangeStarts(t *testing.T) {
	r := Range{From: New(2024, time.January, 10), To: New(2024, time.February, 10)}
	got := slices.Collect(r.Starts(Weekly))
	want := []Date{
		New(2024, time.January, 8),
		New(2024, time.January, 15),
		New(2024, time.January, 22),
		New(2024, time.January, 29),
		New(2024, time.February, 5),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Starts(Weekly) = %v, want %v", got, want)
	}

	if got := slices.Collect(Range{From: r.To, To: r.From}.Starts(Weekly)); len(got) != 0 {
		t.Errorf("Starts() of an inverted range = %v, want nothing", got)
	}
}

func TestRangeContains(t *testing.T) {
	r := Days(New(2024, time.January, 1), 14)
	for _, tc := range []struct {
		d    Date
		want bool
	}{
		{New(2023, time.December, 31), false},
		{New(2024, time.January, 1), true},
		{New(2024, time.January, 15), true},
		{New(2024, time.January, 16), false},
	} {
		if got := r.Contains(tc.d); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.d, got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"daily", Daily, false},
		{"Week", Weekly, false},
		{"monthly", Monthly, false},
		{"quarter", Quarterly, false},
		{"yearly", Weekly, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}
