package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/api"
	"github.com/etnz/sharpeful/feed"
	"github.com/etnz/sharpeful/sample"
	"github.com/google/subcommands"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type serveCmd struct {
	addr    string
	timeout time.Duration
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the dashboards over a JSON HTTP API" }
func (*serveCmd) Usage() string {
	return `sharpeful serve [-addr <host:port>]

  Serves the dashboards of the sample portfolios, and of the ledger file when
  one is set, under /api/portfolios. Prices are cached in memory and the feed
  usage is exported on /metrics.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "localhost:8080", "Address to listen on")
	f.DurationVar(&c.timeout, "timeout", 30*time.Second, "Timeout of a request")
}

// ledgerID is the id of the ledger file portfolio.
const ledgerID = "ledger"

// serverConfig wires the API on the global flags.
func serverConfig(reg *prometheus.Registry) (api.Config, error) {
	f, err := newFeed()
	if err != nil {
		return api.Config{}, err
	}
	f = feed.NewInstrumented(feed.NewCached(f, feed.LatestTTL, feed.HistoryTTL), feed.NewMetrics(reg))

	var options []api.Option
	if ledgerFile != "" {
		options = append(options, api.Option{ID: ledgerID, Name: ledgerFile})
	}
	for _, o := range sample.Options {
		options = append(options, api.Option{ID: o.ID, Name: o.Name})
	}

	return api.Config{
		Options:     options,
		Load:        servePortfolio,
		Feed:        f,
		Assumptions: Assumptions(),
		Today:       today,
		Gatherer:    reg,
	}, nil
}

func servePortfolio(id string) (sharpeful.Portfolio, error) {
	if id == ledgerID && ledgerFile != "" {
		return DecodeLedger(ledgerFile, instrumentsFile)
	}
	for _, o := range sample.Options {
		if o.ID == id {
			return sample.Load(id)
		}
	}
	return sharpeful.Portfolio{}, fmt.Errorf("%w: %q", api.ErrNotFound, id)
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	config, err := serverConfig(reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring the server: %v\n", err)
		return subcommands.ExitFailure
	}
	config.Timeout = c.timeout

	srv := &http.Server{Addr: c.addr, Handler: api.NewRouter(config)}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Printf("cannot shutdown the server: %v", err)
		}
	}()

	fmt.Fprintf(stdout, "Serving on http://%s/api/portfolios\n", c.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Error serving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
