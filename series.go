package sharpeful

import "github.com/etnz/sharpeful/date"

// ValuePoint is the value of a portfolio, or of a benchmark, on a given day.
type ValuePoint struct {
	Date  date.Date `json:"date"`
	Value float64   `json:"value"`
}

// BuildValueSeries returns the total value of positions on every date present in
// at least one of their price series.
//
// A symbol without a close on a date contributes its last seen close times its
// shares, or 0 before its first close. Each symbol is forward-filled on its own.
// No positions, or no prices at all, yield an empty series.
func BuildValueSeries(prices map[string][]PricePoint, positions []Position) []ValuePoint {
	if len(positions) == 0 {
		return nil
	}
	histories := make([]*date.History[float64], len(positions))
	shares := make([]float64, len(positions))
	for i, p := range positions {
		histories[i] = history(prices[p.Symbol])
		shares[i] = p.Shares.InexactFloat64()
	}

	var series []ValuePoint
	last := make([]float64, len(positions))
	for day := range date.Iterate(histories...) {
		total := 0.0
		for i, h := range histories {
			if c, ok := h.Get(day); ok {
				last[i] = c
			}
			total += last[i] * shares[i]
		}
		series = append(series, ValuePoint{Date: day, Value: total})
	}
	return series
}

// CloseSeries turns a price series into a value series of its closes, as used for
// benchmarks.
func CloseSeries(series []PricePoint) []ValuePoint {
	h := history(series)
	if h.Len() == 0 {
		return nil
	}
	values := make([]ValuePoint, 0, h.Len())
	for on, c := range h.Values() {
		values = append(values, ValuePoint{Date: on, Value: c})
	}
	return values
}

// Slice keeps the points of series dated on or after the start of period p, measured
// back from the last point of the series, not from today.
func Slice(series []ValuePoint, p date.Period) []ValuePoint {
	if len(series) == 0 {
		return nil
	}
	cutoff := p.Cutoff(series[len(series)-1].Date)
	var sliced []ValuePoint
	for _, pt := range series {
		if !pt.Date.Before(cutoff) {
			sliced = append(sliced, pt)
		}
	}
	return sliced
}
