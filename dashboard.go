package sharpeful

import (
	"slices"

	"github.com/etnz/sharpeful/date"
)

// Portfolio is a named transaction log over a catalog of instruments.
type Portfolio struct {
	ID           string
	Name         string
	Instruments  *Instruments
	Transactions []Transaction
}

// Symbols returns every symbol the portfolio needs prices for: its instruments, the
// symbols it traded and the benchmarks, without duplicates.
func (p Portfolio) Symbols(a Assumptions) []string {
	var symbols []string
	add := func(s string) {
		if s != "" && !slices.Contains(symbols, s) {
			symbols = append(symbols, s)
		}
	}
	for _, s := range p.Instruments.Symbols() {
		add(s)
	}
	for _, tx := range p.Transactions {
		add(tx.Symbol)
	}
	for _, s := range a.Benchmarks {
		add(s)
	}
	add(a.Benchmark)
	return symbols
}

// FetchRange returns the dates to load prices for: from the first transaction up to
// today, or the last year when there is no transaction.
func (p Portfolio) FetchRange(today date.Date) date.Range {
	if len(p.Transactions) == 0 {
		return date.LastYear(today)
	}
	from := p.Transactions[0].Date()
	for _, tx := range p.Transactions[1:] {
		if d := tx.Date(); d.Before(from) {
			from = d
		}
	}
	return date.Range{From: from, To: today}
}

// Prices is a consistent snapshot of market data for a computation pass.
type Prices struct {
	Latest  map[string]float64      // latest known price per symbol
	History map[string][]PricePoint // daily closes per symbol

	// LatestErr is set when latest prices could not be fetched at all.
	LatestErr error
	// Errors holds the symbols whose history could not be fetched.
	Errors map[string]error
}

// Unavailable reports whether some market data failed to load.
func (p Prices) Unavailable() bool { return p.LatestErr != nil || len(p.Errors) > 0 }

// Dashboard is every figure derived from a portfolio and a price snapshot.
type Dashboard struct {
	Portfolio   string
	Name        string
	Period      date.Period
	Assumptions Assumptions

	Transactions []Transaction // price-resolved, most recent first
	Holdings     []Valuation   // sorted by symbol
	Totals       Totals
	Allocation   []SectorWeight
	TopHoldings  []Valuation
	Best         []Valuation
	History      []ValuePoint // full portfolio value series
	Series       []ValuePoint // History sliced by Period
	Benchmarks   map[string][]ValuePoint
	Performance  Performance
	Ranges       map[string]RangePosition

	// Unavailable is true when the feed failed for part of the data.
	Unavailable bool
}

// TopCount is the number of positions in TopHoldings.
const TopCount = 5

// NewDashboard runs one computation pass. It is a pure function of its inputs.
func NewDashboard(p Portfolio, prices Prices, period date.Period, a Assumptions) *Dashboard {
	d := &Dashboard{
		Portfolio:   p.ID,
		Name:        p.Name,
		Period:      period,
		Assumptions: a,
		Unavailable: prices.Unavailable(),
		Benchmarks:  make(map[string][]ValuePoint),
		Ranges:      make(map[string]RangePosition),
	}

	resolved := ResolvePrices(p.Transactions, prices.History)
	holdings := BuildHoldings(resolved, p.Instruments)

	d.Transactions = slices.Clone(resolved)
	slices.SortStableFunc(d.Transactions, func(a, b Transaction) int { return b.Datetime.Compare(a.Datetime) })

	d.Holdings = Appraise(holdings, prices.Latest)
	d.Totals = Total(d.Holdings)
	d.Allocation = Allocate(d.Holdings)
	d.TopHoldings = TopHoldings(d.Holdings, TopCount)
	d.Best = BestPerformers(d.Holdings)

	d.History = BuildValueSeries(prices.History, Positions(holdings))
	d.Series = Slice(d.History, period)
	for _, s := range append(slices.Clone(a.Benchmarks), a.Benchmark) {
		if s != "" {
			d.Benchmarks[s] = CloseSeries(prices.History[s])
		}
	}
	d.Performance = NewPerformance(d.History, d.Benchmarks, period, a)

	for symbol, series := range prices.History {
		if r, ok := NewRangePosition(series, prices.Latest[symbol]); ok {
			d.Ranges[symbol] = r
		}
	}
	return d
}

// Recent returns at most n of the most recent transactions, all of them if n < 0.
func (d *Dashboard) Recent(n int) []Transaction {
	if n < 0 || n >= len(d.Transactions) {
		return d.Transactions
	}
	return d.Transactions[:n]
}
