// Package feed retrieves market data for the analytics engine.
//
// A Feed serves latest prices and daily close history. Implementations can be
// stacked: Cached avoids hitting the provider for recent answers and Instrumented
// counts requests. Load fetches everything a portfolio needs in one snapshot.
package feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/date"
)

// Feed is a provider of market data.
type Feed interface {
	// Latest returns the latest price of each symbol. Symbols the provider could not
	// price are missing from the result.
	Latest(ctx context.Context, symbols []string) (map[string]float64, error)
	// History returns the normalized daily closes of symbol within r.
	History(ctx context.Context, symbol string, r date.Range) ([]sharpeful.PricePoint, error)
}

// ErrUnavailable is the cause of every error returned by a Feed about the provider.
var ErrUnavailable = errors.New("market data unavailable")

// Error describes a failed provider request.
type Error struct {
	Op      string // "latest" or "history"
	Symbol  string // empty for batch requests
	Status  int    // HTTP status, 0 if the request did not complete
	Message string
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Symbol != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Symbol, msg)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error { return ErrUnavailable }
