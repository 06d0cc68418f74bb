// Package api serves dashboards over a read-only JSON HTTP interface.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/date"
	"github.com/etnz/sharpeful/feed"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Option names a portfolio that can be served.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ErrNotFound is returned by a Config.Load for an unknown portfolio.
var ErrNotFound = errors.New("portfolio not found")

// Config wires the server.
type Config struct {
	Options     []Option
	Load        func(id string) (sharpeful.Portfolio, error)
	Feed        feed.Feed
	Assumptions sharpeful.Assumptions
	LoadOptions feed.LoadOptions
	Today       func() date.Date   // date.Today when nil
	Gatherer    prometheus.Gatherer // served on /metrics when not nil
	Timeout     time.Duration       // per request, 0 means 30s
}

type server struct {
	Config
}

// NewRouter returns the handler of the JSON API.
func NewRouter(c Config) http.Handler {
	if c.Today == nil {
		c.Today = date.Today
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	s := &server{c}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(c.Timeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if c.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(c.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/portfolios", func(r chi.Router) {
		r.Get("/", s.listPortfolios)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.dashboard(func(d *sharpeful.Dashboard, r *http.Request) any { return newDashboardResponse(d) }))
			r.Get("/holdings", s.dashboard(func(d *sharpeful.Dashboard, r *http.Request) any {
				return map[string]any{"totals": d.Totals, "holdings": d.Holdings, "top": d.TopHoldings, "best": d.Best}
			}))
			r.Get("/performance", s.dashboard(func(d *sharpeful.Dashboard, r *http.Request) any { return d.Performance }))
			r.Get("/allocation", s.dashboard(func(d *sharpeful.Dashboard, r *http.Request) any { return d.Allocation }))
			r.Get("/history", s.dashboard(func(d *sharpeful.Dashboard, r *http.Request) any {
				return map[string]any{"series": d.Series, "benchmarks": d.Benchmarks}
			}))
			r.Get("/ranges", s.dashboard(func(d *sharpeful.Dashboard, r *http.Request) any { return d.Ranges }))
			r.Get("/transactions", s.dashboard(func(d *sharpeful.Dashboard, r *http.Request) any {
				limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
				if err != nil {
					limit = 20
				}
				return d.Recent(limit)
			}))
		})
	})
	return r
}

// sendJSON writes v as the JSON body of the response.
func sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("cannot encode response: %v", err)
	}
}

func sendJSONError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}

func (s *server) listPortfolios(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, s.Options)
}

// dashboard returns a handler computing the dashboard of the portfolio in the URL
// and responding with the part of it view selects.
func (s *server) dashboard(view func(*sharpeful.Dashboard, *http.Request) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		p, err := s.Config.Load(id)
		if errors.Is(err, ErrNotFound) {
			sendJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("cannot load portfolio %q: %v", id, err)
			sendJSONError(w, "cannot load portfolio", http.StatusInternalServerError)
			return
		}
		period := date.OneYear
		if q := r.URL.Query().Get("period"); q != "" {
			if period, err = date.ParsePeriod(q); err != nil {
				sendJSONError(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		prices := feed.Load(r.Context(), s.Feed, p.Symbols(s.Assumptions), p.FetchRange(s.Today()), s.LoadOptions)
		d := sharpeful.NewDashboard(p, prices, period, s.Assumptions)
		sendJSON(w, http.StatusOK, view(d, r))
	}
}

type dashboardResponse struct {
	Portfolio    string                             `json:"portfolio"`
	Name         string                             `json:"name"`
	Period       date.Period                        `json:"period"`
	Unavailable  bool                               `json:"unavailable"`
	Totals       sharpeful.Totals                   `json:"totals"`
	Holdings     []sharpeful.Valuation              `json:"holdings"`
	TopHoldings  []sharpeful.Valuation              `json:"topHoldings"`
	Best         []sharpeful.Valuation              `json:"best"`
	Allocation   []sharpeful.SectorWeight           `json:"allocation"`
	Performance  sharpeful.Performance              `json:"performance"`
	Series       []sharpeful.ValuePoint             `json:"series"`
	Ranges       map[string]sharpeful.RangePosition `json:"ranges"`
	Transactions []sharpeful.Transaction            `json:"transactions"`
}

func newDashboardResponse(d *sharpeful.Dashboard) dashboardResponse {
	return dashboardResponse{
		Portfolio:    d.Portfolio,
		Name:         d.Name,
		Period:       d.Period,
		Unavailable:  d.Unavailable,
		Totals:       d.Totals,
		Holdings:     d.Holdings,
		TopHoldings:  d.TopHoldings,
		Best:         d.Best,
		Allocation:   d.Allocation,
		Performance:  d.Performance,
		Series:       d.Series,
		Ranges:       d.Ranges,
		Transactions: d.Recent(20),
	}
}
