package feed

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/date"
	"github.com/patrickmn/go-cache"
)

// Default freshness of cached answers.
const (
	LatestTTL  = 5 * time.Minute
	HistoryTTL = 30 * time.Minute
)

// Cached is a Feed that remembers successful answers of another Feed.
type Cached struct {
	next    Feed
	latest  *cache.Cache
	history *cache.Cache
}

// NewCached caches next answers for latestTTL and historyTTL.
// Zero durations use LatestTTL and HistoryTTL.
func NewCached(next Feed, latestTTL, historyTTL time.Duration) *Cached {
	if latestTTL == 0 {
		latestTTL = LatestTTL
	}
	if historyTTL == 0 {
		historyTTL = HistoryTTL
	}
	return &Cached{
		next:    next,
		latest:  cache.New(latestTTL, 2*latestTTL),
		history: cache.New(historyTTL, 2*historyTTL),
	}
}

// Latest serves every symbol from the cache when possible, and asks next only
// for the missing ones.
func (c *Cached) Latest(ctx context.Context, symbols []string) (map[string]float64, error) {
	latest := make(map[string]float64, len(symbols))
	var missing []string
	for _, s := range symbols {
		if v, found := c.latest.Get(s); found {
			latest[s] = v.(float64)
			continue
		}
		missing = append(missing, s)
	}
	if len(missing) == 0 {
		return latest, nil
	}
	fetched, err := c.next.Latest(ctx, missing)
	if err != nil {
		return nil, err
	}
	for s, v := range fetched {
		c.latest.Set(s, v, cache.DefaultExpiration)
		latest[s] = v
	}
	return latest, nil
}

// History serves the series from the cache when the same range was asked recently.
func (c *Cached) History(ctx context.Context, symbol string, r date.Range) ([]sharpeful.PricePoint, error) {
	key := strings.Join([]string{symbol, r.Identifier()}, "|")
	if v, found := c.history.Get(key); found {
		return slices.Clone(v.([]sharpeful.PricePoint)), nil
	}
	series, err := c.next.History(ctx, symbol, r)
	if err != nil {
		return nil, err
	}
	c.history.Set(key, slices.Clone(series), cache.DefaultExpiration)
	return series, nil
}

// Flush forgets every cached answer.
func (c *Cached) Flush() {
	c.latest.Flush()
	c.history.Flush()
}
