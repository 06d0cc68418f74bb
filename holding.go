package sharpeful

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// Holding is a position held at the end of the transaction log.
type Holding struct {
	Instrument
	Shares    decimal.Decimal `json:"shares"`
	CostBasis decimal.Decimal `json:"costBasis"` // average cost per share
}

// Position is the number of shares held in a symbol.
type Position struct {
	Symbol string
	Shares decimal.Decimal
}

// Position returns the holding as a position.
func (h Holding) Position() Position { return Position{Symbol: h.Symbol, Shares: h.Shares} }

// Positions lists the positions of holdings.
func Positions(holdings []Holding) []Position {
	positions := make([]Position, 0, len(holdings))
	for _, h := range holdings {
		positions = append(positions, h.Position())
	}
	return positions
}

// lot accumulates the shares and total cost of a symbol during replay.
type lot struct {
	shares decimal.Decimal
	cost   decimal.Decimal
}

func (l *lot) buy(quantity, price decimal.Decimal) {
	l.cost = l.cost.Add(quantity.Mul(price))
	l.shares = l.shares.Add(quantity)
}

// sell removes up to quantity shares at the average cost. Selling more than held
// is clamped, and selling an empty lot does nothing.
func (l *lot) sell(quantity decimal.Decimal) {
	if !l.shares.IsPositive() {
		return
	}
	average := l.cost.Div(l.shares)
	sold := decimal.Min(l.shares, quantity)
	l.cost = l.cost.Sub(average.Mul(sold))
	l.shares = l.shares.Sub(sold)
}

// BuildHoldings replays txs in chronological order and returns every symbol still
// held, sorted by symbol. Shares and cost basis are rounded to 2 decimal places.
//
// Transactions without a price count as bought at 0.
func BuildHoldings(txs []Transaction, instruments *Instruments) []Holding {
	ordered := slices.Clone(txs)
	slices.SortStableFunc(ordered, func(a, b Transaction) int { return a.Datetime.Compare(b.Datetime) })

	lots := make(map[string]*lot)
	for _, tx := range ordered {
		l, ok := lots[tx.Symbol]
		if !ok {
			l = new(lot)
			lots[tx.Symbol] = l
		}
		switch tx.Type {
		case Buy:
			l.buy(tx.Quantity, tx.PriceOrZero())
		case Sell:
			l.sell(tx.Quantity)
		}
	}

	holdings := make([]Holding, 0, len(lots))
	for symbol, l := range lots {
		shares := l.shares.Round(2)
		if !shares.IsPositive() {
			continue
		}
		holdings = append(holdings, Holding{
			Instrument: instruments.Lookup(symbol),
			Shares:     shares,
			CostBasis:  l.cost.Div(l.shares).Round(2),
		})
	}
	slices.SortFunc(holdings, func(a, b Holding) int { return cmp.Compare(a.Symbol, b.Symbol) })
	return holdings
}
