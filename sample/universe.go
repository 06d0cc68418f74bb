package sample

import "github.com/etnz/sharpeful"

func in(symbol, name string, sector sharpeful.Sector) sharpeful.Instrument {
	return sharpeful.Instrument{Symbol: symbol, Name: name, Sector: sector}
}

// LargeCaps is a universe of US large capitalization stocks.
var LargeCaps = []sharpeful.Instrument{
	in("AAPL", "Apple Inc.", sharpeful.Technology),
	in("MSFT", "Microsoft Corp.", sharpeful.Technology),
	in("NVDA", "NVIDIA Corp.", sharpeful.Technology),
	in("AMZN", "Amazon.com Inc.", sharpeful.Consumer),
	in("GOOGL", "Alphabet Inc. Class A", sharpeful.Communication),
	in("META", "Meta Platforms Inc.", sharpeful.Communication),
	in("BRK.B", "Berkshire Hathaway Class B", sharpeful.Financial),
	in("JPM", "JPMorgan Chase & Co.", sharpeful.Financial),
	in("V", "Visa Inc.", sharpeful.Financial),
	in("UNH", "UnitedHealth Group", sharpeful.Healthcare),
	in("LLY", "Eli Lilly and Co.", sharpeful.Healthcare),
	in("JNJ", "Johnson & Johnson", sharpeful.Healthcare),
	in("PG", "Procter & Gamble", sharpeful.Consumer),
	in("COST", "Costco Wholesale", sharpeful.Consumer),
	in("HD", "Home Depot", sharpeful.Consumer),
	in("KO", "Coca-Cola Co.", sharpeful.Consumer),
	in("XOM", "Exxon Mobil", sharpeful.Energy),
	in("CVX", "Chevron Corp.", sharpeful.Energy),
	in("CAT", "Caterpillar Inc.", sharpeful.Industrials),
	in("BA", "Boeing Co.", sharpeful.Industrials),
	in("GE", "GE Aerospace", sharpeful.Industrials),
	in("MMM", "3M Co.", sharpeful.Industrials),
	in("NEE", "NextEra Energy", sharpeful.Utilities),
	in("DUK", "Duke Energy", sharpeful.Utilities),
	in("PLD", "Prologis Inc.", sharpeful.RealEstate),
	in("AMT", "American Tower", sharpeful.RealEstate),
	in("LIN", "Linde plc", sharpeful.Materials),
	in("NEM", "Newmont Corp.", sharpeful.Materials),
}

// ETFs is a universe of exchange traded funds.
var ETFs = []sharpeful.Instrument{
	in("SPY", "SPDR S&P 500 ETF", sharpeful.ETF),
	in("QQQ", "Invesco QQQ Trust", sharpeful.ETF),
	in("IVV", "iShares Core S&P 500 ETF", sharpeful.ETF),
	in("VUG", "Vanguard Growth ETF", sharpeful.ETF),
	in("VTI", "Vanguard Total Stock Market ETF", sharpeful.ETF),
	in("IWM", "iShares Russell 2000 ETF", sharpeful.ETF),
	in("DIA", "SPDR Dow Jones Industrial Average ETF", sharpeful.ETF),
	in("XLK", "Technology Select Sector SPDR", sharpeful.ETF),
	in("XLF", "Financial Select Sector SPDR", sharpeful.ETF),
	in("XLE", "Energy Select Sector SPDR", sharpeful.ETF),
	in("SHY", "iShares 1-3 Year Treasury Bond ETF", sharpeful.ETF),
	in("HYG", "iShares iBoxx High Yield Corporate Bond ETF", sharpeful.ETF),
	in("XOP", "SPDR S&P Oil & Gas Exploration ETF", sharpeful.ETF),
	in("UGA", "United States Gasoline Fund", sharpeful.ETF),
	in("IBIT", "iShares Bitcoin Trust", sharpeful.ETF),
	in("VIXY", "ProShares VIX Short-Term Futures ETF", sharpeful.ETF),
	in("DEM", "WisdomTree Emerging Markets High Dividend Fund", sharpeful.ETF),
	in("IAU", "iShares Gold Trust", sharpeful.ETF),
	in("SLV", "iShares Silver Trust", sharpeful.ETF),
}

// Catalog indexes every known instrument of both universes.
var Catalog = sharpeful.NewInstruments(append(append([]sharpeful.Instrument{}, LargeCaps...), ETFs...)...)

// resolve looks up symbols in the Catalog, unknown ones default to Other.
func resolve(symbols ...string) *sharpeful.Instruments {
	list := make([]sharpeful.Instrument, 0, len(symbols))
	for _, s := range symbols {
		list = append(list, Catalog.Lookup(s))
	}
	return sharpeful.NewInstruments(list...)
}

// Describe returns the instruments traded by txs, as the catalog knows them.
func Describe(txs []sharpeful.Transaction) *sharpeful.Instruments {
	seen := make(map[string]bool)
	var symbols []string
	for _, tx := range txs {
		if !seen[tx.Symbol] {
			seen[tx.Symbol] = true
			symbols = append(symbols, tx.Symbol)
		}
	}
	return resolve(symbols...)
}
