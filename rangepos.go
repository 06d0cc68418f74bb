package sharpeful

import "math"

// rangeWindow is the trailing window, in calendar days, of the range position.
const rangeWindow = 365

// RangePosition locates a price within the lowest and highest close of a trailing year.
type RangePosition struct {
	Percent float64 `json:"percent"` // 0 at the low, 100 at the high
	Low     float64 `json:"low"`
	High    float64 `json:"high"`
}

// NewRangePosition places current within the closes of the last 365 days of series,
// counted back from the last point. It returns false when series is empty or
// current is 0. A flat window yields 0.
func NewRangePosition(series []PricePoint, current float64) (RangePosition, bool) {
	h := history(series)
	if h.Len() == 0 || current == 0 {
		return RangePosition{}, false
	}
	last, _ := h.Latest()
	r := RangePosition{Low: math.Inf(1), High: math.Inf(-1)}
	for _, c := range h.Since(last.Add(-rangeWindow)) {
		r.Low = math.Min(r.Low, c)
		r.High = math.Max(r.High, c)
	}
	if r.High != r.Low {
		r.Percent = (current - r.Low) / (r.High - r.Low) * 100
	}
	return r, true
}
