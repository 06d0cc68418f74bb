package sample

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/etnz/sharpeful"
	"github.com/shopspring/decimal"
)

// lcg is a linear congruential generator, so that generated logs are reproducible.
type lcg struct{ state uint32 }

// float returns the next number in [0, 1).
func (g *lcg) float() float64 {
	g.state = g.state*1664525 + 1013904223
	return float64(g.state) / (1 << 32)
}

// between returns an integer in [lo, hi].
func (g *lcg) between(lo, hi int) int {
	return int(math.Floor(g.float()*float64(hi-lo+1))) + lo
}

// sellProbability is the chance that a trade on a held instrument is a sell.
const sellProbability = 0.35

// Generate returns count trades over instruments between start and end, sorted by
// datetime. Trades happen during market hours (UTC), ETFs trade up to 40 shares
// and stocks up to 120. Only instruments already bought get sold.
func Generate(instruments []sharpeful.Instrument, count int, seed uint32, start, end time.Time) []sharpeful.Transaction {
	g := &lcg{state: seed}
	span := end.Sub(start).Milliseconds()
	held := make(map[string]int)
	txs := make([]sharpeful.Transaction, 0, count)

	for i := 0; i < count; i++ {
		instrument := instruments[g.between(0, len(instruments)-1)]
		on := start.Add(time.Duration(g.float()*float64(span)) * time.Millisecond).UTC()
		hour, minute, second := g.between(9, 15), g.between(0, 59), g.between(0, 59)
		on = time.Date(on.Year(), on.Month(), on.Day(), hour, minute, second, 0, time.UTC)

		current := held[instrument.Symbol]
		typ := sharpeful.Buy
		if g.float() < sellProbability && current > 0 {
			typ = sharpeful.Sell
		}

		maxQuantity := 120
		if instrument.Sector == sharpeful.ETF {
			maxQuantity = 40
		}
		quantity := g.between(1, maxQuantity)

		if typ == sharpeful.Buy {
			held[instrument.Symbol] = current + quantity
		} else {
			held[instrument.Symbol] = max(0, current-quantity)
		}

		txs = append(txs, sharpeful.Transaction{
			ID:       fmt.Sprintf("%s-%d-%d", instrument.Symbol, seed, i),
			Symbol:   instrument.Symbol,
			Type:     typ,
			Quantity: decimal.NewFromInt(int64(quantity)),
			Datetime: on,
		})
	}
	slices.SortStableFunc(txs, func(a, b sharpeful.Transaction) int { return a.Datetime.Compare(b.Datetime) })
	return txs
}
