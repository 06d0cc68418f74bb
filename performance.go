package sharpeful

import "github.com/etnz/sharpeful/date"

// BenchmarkReturn is the simple return of a benchmark over a period, in percent.
type BenchmarkReturn struct {
	Symbol string  `json:"symbol"`
	Return float64 `json:"return"`
}

// Performance gathers the risk and return metrics of a value series over a period.
type Performance struct {
	Period     date.Period       `json:"period"`
	From       date.Date         `json:"from"`
	To         date.Date         `json:"to"`
	Change     float64           `json:"change"`     // in currency
	Return     float64           `json:"return"`     // in percent
	Volatility float64           `json:"volatility"` // annualized fraction
	Sharpe     float64           `json:"sharpe"`
	Sortino    float64           `json:"sortino"`
	Beta       float64           `json:"beta"`
	Alpha      float64           `json:"alpha"` // annualized fraction
	Drawdown   Drawdown          `json:"drawdown"`
	Benchmark  string            `json:"benchmark"`
	Benchmarks []BenchmarkReturn `json:"benchmarks"`
	Beat       bool              `json:"beat"` // the return is at least the benchmark's
}

// NewPerformance slices series and every benchmark by p and computes the metrics
// of the sliced portfolio series. Beta, alpha and Beat are measured against the
// benchmark named by a.Benchmark.
func NewPerformance(series []ValuePoint, benchmarks map[string][]ValuePoint, p date.Period, a Assumptions) Performance {
	sliced := Slice(series, p)
	perf := Performance{
		Period:     p,
		Change:     Change(sliced),
		Return:     Return(sliced),
		Volatility: Volatility(sliced, a),
		Sharpe:     Sharpe(sliced, a),
		Sortino:    Sortino(sliced, a),
		Drawdown:   MaxDrawdown(sliced),
		Benchmark:  a.Benchmark,
	}
	if len(sliced) > 0 {
		perf.From, perf.To = sliced[0].Date, sliced[len(sliced)-1].Date
	}

	symbols := a.Benchmarks
	if len(symbols) == 0 && a.Benchmark != "" {
		symbols = []string{a.Benchmark}
	}
	for _, symbol := range symbols {
		perf.Benchmarks = append(perf.Benchmarks, BenchmarkReturn{
			Symbol: symbol,
			Return: Return(Slice(benchmarks[symbol], p)),
		})
	}

	reference := Slice(benchmarks[a.Benchmark], p)
	perf.Beta = Beta(sliced, reference)
	perf.Alpha = Alpha(sliced, reference, a)
	perf.Beat = len(sliced) > 0 && perf.Return >= Return(reference)
	return perf
}
