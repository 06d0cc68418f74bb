package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/date"
	"github.com/etnz/sharpeful/feed"
	"github.com/etnz/sharpeful/feed/alpaca"
	"github.com/etnz/sharpeful/feed/eodhd"
	"github.com/etnz/sharpeful/sample"
	"golang.org/x/time/rate"
)

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// today is the reference date of the reports.
var today = date.Today

// newFeed is replaced in tests.
var newFeed = openFeed

// OpenPortfolio loads the ledger file when one is set, the sample portfolio otherwise.
func OpenPortfolio() (sharpeful.Portfolio, error) {
	if ledgerFile == "" {
		return sample.Load(portfolioID)
	}
	return DecodeLedger(ledgerFile, instrumentsFile)
}

// DecodeLedger reads a transaction log and the instruments it trades. Without
// an instruments file, symbols are described by the sample universe.
func DecodeLedger(ledger, instruments string) (sharpeful.Portfolio, error) {
	f, err := os.Open(ledger)
	if err != nil {
		return sharpeful.Portfolio{}, err
	}
	defer f.Close()
	txs, err := sharpeful.DecodeTransactions(f)
	if err != nil {
		return sharpeful.Portfolio{}, fmt.Errorf("cannot read %s: %w", ledger, err)
	}

	name := strings.TrimSuffix(filepath.Base(ledger), filepath.Ext(ledger))
	p := sharpeful.Portfolio{ID: name, Name: name, Transactions: txs}
	if instruments == "" {
		p.Instruments = sample.Describe(txs)
		return p, nil
	}
	g, err := os.Open(instruments)
	if err != nil {
		return p, err
	}
	defer g.Close()
	if p.Instruments, err = sharpeful.DecodeInstruments(g); err != nil {
		return p, fmt.Errorf("cannot read %s: %w", instruments, err)
	}
	return p, nil
}

// Assumptions returns the default assumptions adjusted by the global flags.
func Assumptions() sharpeful.Assumptions {
	a := sharpeful.DefaultAssumptions()
	a.RiskFreeRate = riskFreeRate
	if benchmark != "" {
		a.Benchmark = strings.ToUpper(benchmark)
	}
	return a
}

// openFeed returns the market data feed selected by the global flags.
func openFeed() (feed.Feed, error) {
	switch strings.ToLower(feedName) {
	case "massive":
		limit := rate.Inf
		if rateLimit > 0 {
			limit = rate.Limit(rateLimit)
		}
		client := feed.NewDiskCache(cacheDir, feed.LatestTTL)
		return feed.NewMassive(apiBase, client, rate.NewLimiter(limit, 1)), nil
	case "alpaca":
		return alpaca.New(os.Getenv("APCA_API_KEY_ID"), os.Getenv("APCA_API_SECRET_KEY")), nil
	case "eodhd":
		client := feed.NewDiskCache(cacheDir, feed.HistoryTTL)
		return eodhd.New(eodhd.DefaultBase, os.Getenv("EODHD_API_KEY"), client), nil
	default:
		return nil, fmt.Errorf("unknown feed %q, want massive, alpaca or eodhd", feedName)
	}
}

// ComputeDashboard loads the portfolio and its prices, then evaluates it over p.
func ComputeDashboard(ctx context.Context, p date.Period) (*sharpeful.Dashboard, error) {
	f, err := newFeed()
	if err != nil {
		return nil, err
	}
	pf, prices, err := loadMarket(ctx, f)
	if err != nil {
		return nil, err
	}
	return sharpeful.NewDashboard(pf, prices, p, Assumptions()), nil
}

// loadMarket loads the portfolio and the prices of every symbol it needs.
func loadMarket(ctx context.Context, f feed.Feed) (sharpeful.Portfolio, sharpeful.Prices, error) {
	pf, err := OpenPortfolio()
	if err != nil {
		return pf, sharpeful.Prices{}, fmt.Errorf("cannot load portfolio: %w", err)
	}
	prices := feed.Load(ctx, f, pf.Symbols(Assumptions()), pf.FetchRange(today()), feed.LoadOptions{})
	return pf, prices, nil
}

// desk computes the dashboards of a long running session on a shared feed.
// Only the latest request is answered.
type desk struct {
	feed    feed.Feed
	tracker feed.Tracker
}

func newDesk(f feed.Feed) *desk {
	return &desk{feed: feed.NewCached(f, feed.LatestTTL, feed.HistoryTTL)}
}

// Dashboard evaluates the selected portfolio over p.
func (d *desk) Dashboard(ctx context.Context, p date.Period) (*sharpeful.Dashboard, error) {
	selection := portfolioID
	if ledgerFile != "" {
		selection = ledgerFile
	}
	batch := d.tracker.Begin(selection + "/" + p.String())
	pf, prices, err := loadMarket(ctx, d.feed)
	if err != nil {
		return nil, err
	}
	if !d.tracker.Accept(batch) {
		return nil, fmt.Errorf("request %s for %s was superseded", batch.ID, batch.Selection)
	}
	return sharpeful.NewDashboard(pf, prices, p, Assumptions()), nil
}

// printMarkdown renders md for the terminal, verbatim if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprintln(stdout, md)
}
