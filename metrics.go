package sharpeful

import (
	"math"

	"github.com/etnz/sharpeful/date"
)

// Assumptions are the market constants the metrics depend on.
type Assumptions struct {
	RiskFreeRate float64  // annual, e.g. 0.04 for 4%
	TradingDays  int      // trading days per year used to annualize daily figures
	Benchmark    string   // benchmark used for beta, alpha and the beat comparison
	Benchmarks   []string // benchmarks always loaded along with the portfolio
}

// DefaultAssumptions returns a 4% risk free rate, 252 trading days and SPY as
// the reference among SPY, QQQ and DIA.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		RiskFreeRate: 0.04,
		TradingDays:  252,
		Benchmark:    "SPY",
		Benchmarks:   []string{"SPY", "QQQ", "DIA"},
	}
}

func (a Assumptions) days() float64 {
	if a.TradingDays <= 0 {
		return 252
	}
	return float64(a.TradingDays)
}

// DailyReturns returns the relative change between consecutive points. A change
// from a zero value counts as 0.
func DailyReturns(series []ValuePoint) []float64 {
	if len(series) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		returns = append(returns, change(series[i-1].Value, series[i].Value))
	}
	return returns
}

func change(prev, cur float64) float64 {
	if prev == 0 {
		return 0
	}
	return (cur - prev) / prev
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// variance is the population variance of values.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return sum / float64(len(values))
}

// covariance is the population covariance of two equally long samples.
func covariance(x, y []float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return 0
	}
	mx, my := mean(x), mean(y)
	var sum float64
	for i := range x {
		sum += (x[i] - mx) * (y[i] - my)
	}
	return sum / float64(len(x))
}

// Return is the simple return over the series, in percent.
func Return(series []ValuePoint) float64 {
	if len(series) < 2 {
		return 0
	}
	first, last := series[0].Value, series[len(series)-1].Value
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}

// Change is the difference between the last and the first value of the series.
func Change(series []ValuePoint) float64 {
	if len(series) < 2 {
		return 0
	}
	return series[len(series)-1].Value - series[0].Value
}

// Volatility is the annualized standard deviation of daily returns, as a fraction.
func Volatility(series []ValuePoint, a Assumptions) float64 {
	if len(series) < 2 {
		return 0
	}
	return math.Sqrt(variance(DailyReturns(series))) * math.Sqrt(a.days())
}

// Sharpe is the annualized excess return over the risk free rate per unit of volatility.
func Sharpe(series []ValuePoint, a Assumptions) float64 {
	if len(series) < 2 {
		return 0
	}
	returns := DailyReturns(series)
	vol := math.Sqrt(variance(returns)) * math.Sqrt(a.days())
	if vol == 0 {
		return 0
	}
	return (mean(returns)*a.days() - a.RiskFreeRate) / vol
}

// Sortino is like Sharpe but only penalizes the daily returns below the daily risk free rate.
func Sortino(series []ValuePoint, a Assumptions) float64 {
	if len(series) < 2 {
		return 0
	}
	daily := a.RiskFreeRate / a.days()
	returns := DailyReturns(series)
	excess := make([]float64, len(returns))
	var downside float64
	for i, r := range returns {
		excess[i] = r - daily
		if d := math.Min(0, excess[i]); d < 0 {
			downside += d * d
		}
	}
	deviation := math.Sqrt(downside/float64(len(excess))) * math.Sqrt(a.days())
	if deviation == 0 {
		return 0
	}
	return mean(excess) * a.days() / deviation
}

// aligned holds the daily returns of a portfolio and a benchmark over their common dates.
type aligned struct {
	portfolio, benchmark []float64
}

// align inner joins series and benchmark on date and computes both daily returns.
// It returns false when either side, or the join, has fewer than 2 points.
func align(series, benchmark []ValuePoint) (aligned, bool) {
	if len(series) < 2 || len(benchmark) < 2 {
		return aligned{}, false
	}
	bench := make(map[date.Date]float64, len(benchmark))
	for _, p := range benchmark {
		bench[p.Date] = p.Value
	}
	var ps, bs []ValuePoint
	for _, p := range series {
		if b, ok := bench[p.Date]; ok {
			ps = append(ps, p)
			bs = append(bs, ValuePoint{Date: p.Date, Value: b})
		}
	}
	if len(ps) < 2 {
		return aligned{}, false
	}
	return aligned{portfolio: DailyReturns(ps), benchmark: DailyReturns(bs)}, true
}

func (al aligned) beta() float64 {
	v := variance(al.benchmark)
	if v == 0 {
		return 0
	}
	return covariance(al.portfolio, al.benchmark) / v
}

// Beta is the sensitivity of the series daily returns to the benchmark daily returns,
// measured on the dates both series share.
func Beta(series, benchmark []ValuePoint) float64 {
	al, ok := align(series, benchmark)
	if !ok {
		return 0
	}
	return al.beta()
}

// Alpha is the annualized return of the series in excess of what its beta exposure to
// the benchmark predicts.
func Alpha(series, benchmark []ValuePoint, a Assumptions) float64 {
	al, ok := align(series, benchmark)
	if !ok {
		return 0
	}
	portfolio := mean(al.portfolio) * a.days()
	market := mean(al.benchmark) * a.days()
	return portfolio - (a.RiskFreeRate + al.beta()*(market-a.RiskFreeRate))
}

// Drawdown is the largest decline from a running peak, as a non positive fraction.
type Drawdown struct {
	Drawdown float64   `json:"drawdown"`
	Peak     date.Date `json:"peak"`
	Trough   date.Date `json:"trough"`
}

// MaxDrawdown returns the deepest drawdown of series with the peak and trough
// dates that produced it. An always rising series has a 0 drawdown dated on its
// first point.
func MaxDrawdown(series []ValuePoint) Drawdown {
	if len(series) < 2 {
		return Drawdown{}
	}
	peak, peakDate := series[0].Value, series[0].Date
	dd := Drawdown{Peak: peakDate, Trough: peakDate}
	for _, p := range series {
		if p.Value > peak {
			peak, peakDate = p.Value, p.Date
		}
		if peak == 0 {
			continue
		}
		if d := (p.Value - peak) / peak; d < dd.Drawdown {
			dd = Drawdown{Drawdown: d, Peak: peakDate, Trough: p.Date}
		}
	}
	return dd
}
