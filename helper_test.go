package sharpeful

import (
	"math"
	"time"

	"github.com/etnz/sharpeful/date"
	"github.com/shopspring/decimal"
)

// D is a helper for tests to create dates from a string.
func D(s string) date.Date { return date.MustParse(s) }

// Q is a helper for tests to create decimals from a float.
func Q(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// P is a helper for tests to create an optional price.
func P(v float64) *decimal.Decimal { p := Q(v); return &p }

// at returns noon UTC on day s.
func at(s string) time.Time { return D(s).Time().Add(12 * time.Hour) }

// tx is a helper for tests to create a transaction at noon on day s.
func tx(id, symbol string, typ TxType, quantity float64, s string) Transaction {
	return Transaction{ID: id, Symbol: symbol, Type: typ, Quantity: Q(quantity), Datetime: at(s)}
}

// near reports whether a and b are equal within a small tolerance.
func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// values is a helper to build a daily value series starting on start.
func values(start string, vs ...float64) []ValuePoint {
	d := D(start)
	series := make([]ValuePoint, len(vs))
	for i, v := range vs {
		series[i] = ValuePoint{Date: d.Add(i), Value: v}
	}
	return series
}
