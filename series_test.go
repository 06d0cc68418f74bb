package sharpeful

import (
	"reflect"
	"testing"

	"github.com/etnz/sharpeful/date"
)

func TestBuildValueSeries(t *testing.T) {
	testCases := []struct {
		name      string
		prices    map[string][]PricePoint
		positions []Position
		want      []ValuePoint
	}{
		{
			name: "no date is fabricated",
			prices: map[string][]PricePoint{
				"X": {{Date: D("2024-01-01"), Close: 100}, {Date: D("2024-01-03"), Close: 102}},
			},
			positions: []Position{{Symbol: "X", Shares: Q(10)}},
			want: []ValuePoint{
				{Date: D("2024-01-01"), Value: 1000},
				{Date: D("2024-01-03"), Value: 1020},
			},
		},
		{
			name: "forward fill per symbol",
			prices: map[string][]PricePoint{
				"X": {{Date: D("2024-01-01"), Close: 10}, {Date: D("2024-01-03"), Close: 12}},
				"Y": {{Date: D("2024-01-02"), Close: 5}},
			},
			positions: []Position{{Symbol: "X", Shares: Q(1)}, {Symbol: "Y", Shares: Q(2)}},
			want: []ValuePoint{
				{Date: D("2024-01-01"), Value: 10}, // Y not quoted yet
				{Date: D("2024-01-02"), Value: 20}, // X forward filled
				{Date: D("2024-01-03"), Value: 22}, // Y forward filled
			},
		},
		{
			name: "prices of symbols not held are ignored",
			prices: map[string][]PricePoint{
				"X":   {{Date: D("2024-01-02"), Close: 10}},
				"SPY": {{Date: D("2024-01-01"), Close: 400}},
			},
			positions: []Position{{Symbol: "X", Shares: Q(1)}},
			want:      []ValuePoint{{Date: D("2024-01-02"), Value: 10}},
		},
		{
			name:   "no positions",
			prices: map[string][]PricePoint{"X": {{Date: D("2024-01-01"), Close: 1}}},
		},
		{
			name:      "no prices",
			positions: []Position{{Symbol: "X", Shares: Q(1)}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildValueSeries(tc.prices, tc.positions)
			if len(tc.want) == 0 {
				if len(got) != 0 {
					t.Errorf("BuildValueSeries() = %v, want empty", got)
				}
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("BuildValueSeries() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	series := values("2024-01-01", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	got := Slice(series, date.OneWeek)
	if len(got) != 8 {
		t.Fatalf("Slice(1W) has %d points, want 8", len(got))
	}
	if got[0].Date != D("2024-01-03") || got[len(got)-1].Date != D("2024-01-10") {
		t.Errorf("Slice(1W) = %v..%v, want 2024-01-03..2024-01-10", got[0].Date, got[len(got)-1].Date)
	}

	if got := Slice(series, date.OneYear); len(got) != len(series) {
		t.Errorf("Slice(1Y) has %d points, want %d", len(got), len(series))
	}

	span := append(values("2023-12-30", 1, 2), values("2024-01-01", 3)...)
	if got := Slice(span, date.YearToDate); len(got) != 1 || got[0].Value != 3 {
		t.Errorf("Slice(YTD) = %v, want only 2024 points", got)
	}

	if got := Slice(nil, date.OneMonth); len(got) != 0 {
		t.Errorf("Slice(nil) = %v, want empty", got)
	}
}

func TestCloseSeries(t *testing.T) {
	got := CloseSeries([]PricePoint{{Date: D("2024-01-02"), Close: 2}, {Date: D("2024-01-01"), Close: 1}})
	want := []ValuePoint{{Date: D("2024-01-01"), Value: 1}, {Date: D("2024-01-02"), Value: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CloseSeries() = %v, want %v", got, want)
	}
}
