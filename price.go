package sharpeful

import (
	"math"
	"slices"
	"time"

	"github.com/etnz/sharpeful/date"
	"github.com/shopspring/decimal"
)

// PricePoint is the closing price of a symbol on a trading day.
type PricePoint struct {
	Date  date.Date `json:"date"`
	Close float64   `json:"close"`
}

// Candle is a raw provider observation, possibly invalid.
type Candle struct {
	Time  time.Time // zero when the provider sent no usable timestamp
	Close float64
}

// Normalize converts raw candles into a series sorted by date with one point per
// calendar day. Candles without a time or with a non-finite close are dropped;
// when several candles fall on the same day, the last one in provider order wins.
//
// No candles is an empty series, not an error.
func Normalize(candles []Candle) []PricePoint {
	h := new(date.History[float64])
	for _, c := range candles {
		if c.Time.IsZero() || math.IsNaN(c.Close) || math.IsInf(c.Close, 0) {
			continue
		}
		h.Append(date.Of(c.Time), c.Close)
	}
	return points(h)
}

// points converts a history of closes into price points.
func points(h *date.History[float64]) []PricePoint {
	if h.Len() == 0 {
		return nil
	}
	series := make([]PricePoint, 0, h.Len())
	for on, c := range h.Values() {
		series = append(series, PricePoint{Date: on, Close: c})
	}
	return series
}

// history indexes a possibly unsorted series by date. Duplicate dates keep the last point.
func history(series []PricePoint) *date.History[float64] {
	h := new(date.History[float64])
	for _, p := range series {
		h.Append(p.Date, p.Close)
	}
	return h
}

// PriceAsOf returns the close of the latest point dated on or before on.
// It returns 0 when the series holds no such point.
func PriceAsOf(series []PricePoint, on date.Date) float64 {
	c, _ := history(series).ValueAsOf(on)
	return c
}

// LatestClose returns the close of the most recent point of the series, and false if
// the series is empty.
func LatestClose(series []PricePoint) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}
	_, c := history(series).Latest()
	return c, true
}

// ResolvePrices returns a copy of txs where every transaction without a recorded
// price carries the as-of close of its symbol on its date. Unknown prices resolve to 0.
func ResolvePrices(txs []Transaction, prices map[string][]PricePoint) []Transaction {
	histories := make(map[string]*date.History[float64])
	resolved := slices.Clone(txs)
	for i, tx := range resolved {
		if tx.HasPrice() {
			continue
		}
		h, ok := histories[tx.Symbol]
		if !ok {
			h = history(prices[tx.Symbol])
			histories[tx.Symbol] = h
		}
		c, _ := h.ValueAsOf(tx.Date())
		resolved[i] = tx.WithPrice(decimal.NewFromFloat(c))
	}
	return resolved
}
