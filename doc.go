// Package sharpeful reconstructs holdings from a buy and sell transaction log and
// derives the value, risk and return figures of a portfolio from daily closes.
//
// The engine is a set of pure functions over in-memory data:
//   - Normalize turns raw provider candles into a sorted series of daily closes.
//   - ResolvePrices backfills missing execution prices with the as-of close.
//   - BuildHoldings replays the log into positions with an average cost basis.
//   - BuildValueSeries sums positions times forward-filled closes on every date.
//   - Slice restricts a series to a trailing Period such as 1Y or YTD.
//   - Return, Volatility, Sharpe, Sortino, Beta, Alpha and MaxDrawdown measure it.
//   - Allocate, TopHoldings and BestPerformers rank the current holdings.
//
// NewDashboard runs all of them in a single consistent pass. Market data comes from
// the feed package, and the cmd package exposes the result on the command line.
package sharpeful
