package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/date"
	"golang.org/x/time/rate"
)

// Massive is a Feed backed by the Massive market data proxy. The proxy holds the
// API key and serves daily aggregates under /api/massive.
type Massive struct {
	base    string
	client  *http.Client
	limiter *rate.Limiter
}

// NewMassive returns a Massive feed served at base. A nil client is
// http.DefaultClient, a nil limiter does not throttle requests.
func NewMassive(base string, client *http.Client, limiter *rate.Limiter) *Massive {
	if client == nil {
		client = http.DefaultClient
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Massive{base: strings.TrimRight(base, "/"), client: client, limiter: limiter}
}

// aggs is the provider payload of daily aggregates.
type aggs struct {
	Ticker  string `json:"ticker"`
	Results []struct {
		C float64 `json:"c"` // close
		T int64   `json:"t"` // epoch milliseconds
	} `json:"results"`
}

// series normalizes the aggregates.
func (a *aggs) series() []sharpeful.PricePoint {
	if a == nil {
		return nil
	}
	candles := make([]sharpeful.Candle, 0, len(a.Results))
	for _, r := range a.Results {
		var on time.Time
		if r.T != 0 {
			on = time.UnixMilli(r.T).UTC()
		}
		candles = append(candles, sharpeful.Candle{Time: on, Close: r.C})
	}
	return sharpeful.Normalize(candles)
}

type latestResponse struct {
	Results []struct {
		Symbol string          `json:"symbol"`
		Data   *aggs           `json:"data"`
		Error  json.RawMessage `json:"error"`
	} `json:"results"`
}

// Latest returns the close of the last recent aggregate of each symbol.
func (m *Massive) Latest(ctx context.Context, symbols []string) (map[string]float64, error) {
	latest := make(map[string]float64)
	if len(symbols) == 0 {
		return latest, nil
	}
	q := url.Values{"symbols": {strings.Join(symbols, ",")}}
	var resp latestResponse
	if err := m.get(ctx, "latest", "", "/api/massive/latest?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	for _, r := range resp.Results {
		if len(r.Error) > 0 && string(r.Error) != "null" {
			continue
		}
		if c, ok := sharpeful.LatestClose(r.Data.series()); ok {
			latest[r.Symbol] = c
		}
	}
	return latest, nil
}

// History returns the daily closes of symbol within r.
func (m *Massive) History(ctx context.Context, symbol string, r date.Range) ([]sharpeful.PricePoint, error) {
	q := url.Values{
		"symbol": {symbol},
		"start":  {r.From.String()},
		"end":    {r.To.String()},
	}
	var resp aggs
	if err := m.get(ctx, "history", symbol, "/api/massive/history?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.series(), nil
}

func (m *Massive) get(ctx context.Context, op, symbol, path string, data any) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return &Error{Op: op, Symbol: symbol, Message: err.Error()}
	}
	status, body, err := jwget(ctx, m.client, m.base+path, data)
	if err != nil {
		return &Error{Op: op, Symbol: symbol, Status: status, Message: err.Error()}
	}
	if status != http.StatusOK {
		return &Error{Op: op, Symbol: symbol, Status: status, Message: message(body)}
	}
	return nil
}

// message extracts the error message of a failed provider response.
func message(body []byte) string {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err == nil {
		for _, path := range []string{"$.message", "$.error"} {
			v, err := jsonpath.Get(path, jobj)
			if err != nil {
				continue
			}
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return "Massive API request failed."
}
