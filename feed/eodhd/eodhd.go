// Package eodhd implements a market data feed on top of the EOD Historical Data API.
package eodhd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/date"
	"github.com/etnz/sharpeful/feed"
)

// DefaultBase is the address of the EODHD API.
const DefaultBase = "https://eodhd.com"

// DemoKey is the public key of the EODHD API, limited to a few tickers.
const DemoKey = "demo"

// lookback is how far back Latest looks for a daily close.
const lookback = 7

// Feed serves end of day prices from EODHD. It implements feed.Feed.
type Feed struct {
	base   string
	apiKey string
	client *http.Client
	today  func() date.Date
}

var _ feed.Feed = (*Feed)(nil)

// New returns a Feed querying base with apiKey. A nil client is http.DefaultClient.
func New(base, apiKey string, client *http.Client) *Feed {
	if client == nil {
		client = http.DefaultClient
	}
	if apiKey == "" {
		apiKey = DemoKey
	}
	return &Feed{base: strings.TrimRight(base, "/"), apiKey: apiKey, client: client, today: date.Today}
}

// ticker is the EODHD code of symbol, US listings unless an exchange is given.
func ticker(symbol string) string {
	if strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + ".US"
}

// Latest returns the most recent close of each symbol in the last week.
// A symbol that fails is left out, Latest fails only if every symbol does.
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

// eod is a daily quote, bounds of the requested range included.
type eod struct {
	Date  date.Date `json:"date"`
	Close float64   `json:"close"`
}

// History returns the daily closes of symbol within r.
func (f *Feed) History(ctx context.Context, symbol string, r date.Range) ([]sharpeful.PricePoint, error) {
	q := url.Values{}
	q.Set("fmt", "json")
	q.Set("api_token", f.apiKey)
	q.Set("from", r.From.String())
	q.Set("to", r.To.String())
	addr := fmt.Sprintf("%s/api/eod/%s?%s", f.base, url.PathEscape(ticker(symbol)), q.Encode())

	var content []eod
	if err := f.jwget(ctx, addr, &content); err != nil {
		var e *feed.Error
		if errors.As(err, &e) {
			e.Symbol = symbol
			return nil, e
		}
		return nil, &feed.Error{Op: "history", Symbol: symbol, Message: err.Error()}
	}
	candles := make([]sharpeful.Candle, 0, len(content))
	for _, c := range content {
		candles = append(candles, sharpeful.Candle{Time: c.Date.Time(), Close: c.Close})
	}
	return sharpeful.Normalize(candles), nil
}

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
func (f *Feed) jwget(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		// the address holds the key
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return uerr.Err
		}
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(body))
		if msg == "" || len(msg) > 200 {
			msg = http.StatusText(resp.StatusCode)
		}
		return &feed.Error{Op: "history", Status: resp.StatusCode, Message: msg}
	}
	return json.Unmarshal(body, data)
}
