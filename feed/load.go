package feed

import (
	"context"
	"log"
	"sync"

	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/date"
	"golang.org/x/sync/errgroup"
)

// LoadOptions tunes Load.
type LoadOptions struct {
	// Concurrency bounds the number of requests in flight, 0 means 8.
	Concurrency int
}

// Load fetches the latest prices of symbols and their history within r, concurrently.
//
// It never fails: a failed latest request is recorded in Prices.LatestErr and a
// failed history request in Prices.Errors, so that the rest of the snapshot stays
// usable. The snapshot is complete when Load returns.
func Load(ctx context.Context, f Feed, symbols []string, r date.Range, opts LoadOptions) sharpeful.Prices {
	prices := sharpeful.Prices{
		Latest:  make(map[string]float64),
		History: make(map[string][]sharpeful.PricePoint),
		Errors:  make(map[string]error),
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = 8
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(limit)

	g.Go(func() error {
		latest, err := f.Latest(ctx, symbols)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			log.Printf("cannot fetch latest prices: %v", err)
			prices.LatestErr = err
			return nil
		}
		for s, v := range latest {
			prices.Latest[s] = v
		}
		return nil
	})
	for _, symbol := range symbols {
		g.Go(func() error {
			series, err := f.History(ctx, symbol, r)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("cannot fetch %s history: %v", symbol, err)
				prices.Errors[symbol] = err
				return nil
			}
			prices.History[symbol] = series
			return nil
		})
	}
	_ = g.Wait() // goroutines record their errors
	return prices
}
