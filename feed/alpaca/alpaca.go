// Package alpaca implements a market data feed on top of the Alpaca market data API.
package alpaca

import (
	"context"
	"errors"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/date"
	"github.com/etnz/sharpeful/feed"
)

// barsClient is the part of *marketdata.Client the feed uses.
type barsClient interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

// lookback is how far back Latest looks for a daily bar.
const lookback = 7

// Feed serves daily bars from Alpaca. It implements feed.Feed.
type Feed struct {
	client barsClient
	today  func() date.Date
}

var _ feed.Feed = (*Feed)(nil)

// New returns a Feed authenticated with key and secret; empty values read the
// APCA_API_KEY_ID and APCA_API_SECRET_KEY environment variables.
func New(key, secret string) *Feed {
	return &Feed{
		client: marketdata.NewClient(marketdata.ClientOpts{APIKey: key, APISecret: secret}),
		today:  date.Today,
	}
}

// Latest returns the close of the most recent daily bar of each symbol in the last week.
// The SDK has no batch error reporting: a symbol that fails is left out, and
// Latest fails only if every symbol does.
func (f *Feed) Latest(ctx context.Context, symbols []string) (map[string]float64, error) {
	r := date.Range{From: f.today().Add(-lookback), To: f.today()}
	latest := make(map[string]float64)
	var errs []error
	for _, s := range symbols {
		series, err := f.History(ctx, s, r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if c, ok := sharpeful.LatestClose(series); ok {
			latest[s] = c
		}
	}
	if len(errs) > 0 && len(errs) == len(symbols) {
		return nil, &feed.Error{Op: "latest", Message: errors.Join(errs...).Error()}
	}
	return latest, nil
}

// History returns the daily closes of symbol within r.
func (f *Feed) History(ctx context.Context, symbol string, r date.Range) ([]sharpeful.PricePoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, &feed.Error{Op: "history", Symbol: symbol, Message: err.Error()}
	}
	bars, err := f.client.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     r.From.Time(),
		End:       r.To.Time().Add(24*time.Hour - time.Second),
	})
	if err != nil {
		return nil, &feed.Error{Op: "history", Symbol: symbol, Message: err.Error()}
	}
	candles := make([]sharpeful.Candle, 0, len(bars))
	for _, b := range bars {
		candles = append(candles, sharpeful.Candle{Time: b.Timestamp, Close: b.Close})
	}
	return sharpeful.Normalize(candles), nil
}
