package feed

import (
	"context"
	"time"

	"github.com/etnz/sharpeful"
	"github.com/etnz/sharpeful/date"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts feed requests.
type Metrics struct {
	Requests *prometheus.CounterVec   // by op and status
	Latency  *prometheus.HistogramVec // by op
	Points   prometheus.Counter       // history points received
}

// NewMetrics registers the feed metrics in reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sharpeful",
			Subsystem: "feed",
			Name:      "requests_total",
			Help:      "Total number of market data requests",
		}, []string{"op", "status"}),
		Latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sharpeful",
			Subsystem: "feed",
			Name:      "request_duration_seconds",
			Help:      "Market data request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		Points: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sharpeful",
			Subsystem: "feed",
			Name:      "history_points_total",
			Help:      "Total number of daily closes received",
		}),
	}
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.Requests.WithLabelValues(op, status).Inc()
	m.Latency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Instrumented is a Feed recording metrics about another Feed.
type Instrumented struct {
	next    Feed
	metrics *Metrics
}

// NewInstrumented records next requests in m.
func NewInstrumented(next Feed, m *Metrics) *Instrumented {
	return &Instrumented{next: next, metrics: m}
}

func (f *Instrumented) Latest(ctx context.Context, symbols []string) (map[string]float64, error) {
	start := time.Now()
	latest, err := f.next.Latest(ctx, symbols)
	f.metrics.observe("latest", start, err)
	return latest, err
}

func (f *Instrumented) History(ctx context.Context, symbol string, r date.Range) ([]sharpeful.PricePoint, error) {
	start := time.Now()
	series, err := f.next.History(ctx, symbol, r)
	f.metrics.observe("history", start, err)
	f.metrics.Points.Add(float64(len(series)))
	return series, err
}
