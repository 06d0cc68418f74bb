// Package sample provides demonstration portfolios, generated or recorded.
package sample

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/etnz/sharpeful"
	"github.com/shopspring/decimal"
)

//go:embed roth_ira.jsonl
var rothIRA []byte

// Option names a sample portfolio.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Options lists the sample portfolios, the default one first.
var Options = []Option{
	{ID: "portfolio-4", Name: "Fidelity Investments - Daniel's Roth IRA"},
	{ID: "portfolio-1", Name: "Investment Portfolio 1"},
	{ID: "portfolio-2", Name: "Investment Portfolio 2"},
	{ID: "portfolio-3", Name: "Verification Portfolio QQQ"},
}

// Default is the id of the portfolio loaded when none is chosen.
const Default = "portfolio-4"

var rothSymbols = []string{"IVV", "QQQ", "HYG", "KRE", "VIXY", "XOP", "SHY", "IWM", "UGA", "IBIT", "VUG", "DEM", "IAU", "SLV"}

var portfolio2Instruments = []sharpeful.Instrument{
	in("SPY", "SPDR S&P 500 ETF", sharpeful.ETF),
	in("QQQ", "Invesco QQQ Trust", sharpeful.ETF),
	in("IVV", "iShares Core S&P 500 ETF", sharpeful.ETF),
	in("VUG", "Vanguard Growth ETF", sharpeful.ETF),
	in("MSCI", "MSCI Inc.", sharpeful.Financial),
	in("AAPL", "Apple Inc.", sharpeful.Technology),
	in("MSFT", "Microsoft Corp.", sharpeful.Technology),
	in("NVDA", "NVIDIA Corp.", sharpeful.Technology),
	in("AMZN", "Amazon.com Inc.", sharpeful.Consumer),
	in("JPM", "JPMorgan Chase & Co.", sharpeful.Financial),
	in("UNH", "UnitedHealth Group", sharpeful.Healthcare),
	in("PG", "Procter & Gamble", sharpeful.Consumer),
}

func utc(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Load returns the sample portfolio with that id.
func Load(id string) (sharpeful.Portfolio, error) {
	p := sharpeful.Portfolio{ID: id}
	for _, o := range Options {
		if o.ID == id {
			p.Name = o.Name
		}
	}
	switch id {
	case "portfolio-1":
		universe := append(append([]sharpeful.Instrument{}, LargeCaps...), ETFs...)
		p.Instruments = sharpeful.NewInstruments(universe...)
		p.Transactions = Generate(universe, 500, 2023, utc("2023-01-01T00:00:00Z"), utc("2025-12-31T23:59:59Z"))
	case "portfolio-2":
		p.Instruments = sharpeful.NewInstruments(portfolio2Instruments...)
		p.Transactions = Generate(portfolio2Instruments, 50, 2024, utc("2023-06-01T00:00:00Z"), utc("2025-12-31T23:59:59Z"))
	case "portfolio-3":
		p.Instruments = resolve("QQQ")
		p.Transactions = []sharpeful.Transaction{{
			ID:       "QQQ-portfolio-3-1",
			Symbol:   "QQQ",
			Type:     sharpeful.Buy,
			Quantity: decimal.NewFromInt(10),
			Datetime: utc("2025-02-12T15:30:00Z"),
		}}
	case "portfolio-4":
		txs, err := sharpeful.DecodeTransactions(bytes.NewReader(rothIRA))
		if err != nil {
			return p, fmt.Errorf("cannot decode the roth ira log: %w", err)
		}
		p.Instruments = resolve(rothSymbols...)
		p.Transactions = txs
	default:
		return p, fmt.Errorf("unknown sample portfolio %q", id)
	}
	return p, nil
}
