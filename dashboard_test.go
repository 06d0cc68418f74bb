package sharpeful

import (
	"errors"
	"reflect"
	"testing"

	"github.com/etnz/sharpeful/date"
)

func testPortfolio() Portfolio {
	return Portfolio{
		ID:   "test",
		Name: "Test Portfolio",
		Instruments: NewInstruments(
			Instrument{Symbol: "X", Name: "X Corp.", Sector: Technology},
			Instrument{Symbol: "Y", Name: "Y Power", Sector: Energy},
		),
		Transactions: []Transaction{
			tx("1", "X", Buy, 10, "2024-01-01"),
			tx("2", "X", Buy, 10, "2024-01-02"),
			tx("3", "Y", Buy, 5, "2024-01-02").WithPrice(Q(20)),
			tx("4", "Y", Sell, 5, "2024-01-03"),
		},
	}
}

func testPrices() Prices {
	return Prices{
		Latest: map[string]float64{"X": 120, "Y": 22, "SPY": 101},
		History: map[string][]PricePoint{
			"X":   {{Date: D("2024-01-01"), Close: 100}, {Date: D("2024-01-02"), Close: 110}, {Date: D("2024-01-03"), Close: 120}},
			"Y":   {{Date: D("2024-01-02"), Close: 20}, {Date: D("2024-01-03"), Close: 22}},
			"SPY": {{Date: D("2024-01-01"), Close: 100}, {Date: D("2024-01-02"), Close: 100}, {Date: D("2024-01-03"), Close: 101}},
		},
	}
}

func TestNewDashboard(t *testing.T) {
	d := NewDashboard(testPortfolio(), testPrices(), date.OneYear, DefaultAssumptions())

	if len(d.Holdings) != 1 {
		t.Fatalf("NewDashboard().Holdings = %v, want only X", d.Holdings)
	}
	x := d.Holdings[0]
	if x.Symbol != "X" || !x.Shares.Equal(Q(20)) || !x.CostBasis.Equal(Q(105)) || x.Value != 2400 {
		t.Errorf("NewDashboard().Holdings[0] = %+v", x)
	}
	if d.Totals.Value != 2400 || d.Totals.Cost != 2100 || d.Totals.Gain != 300 {
		t.Errorf("NewDashboard().Totals = %+v", d.Totals)
	}

	wantSeries := []ValuePoint{
		{Date: D("2024-01-01"), Value: 2000},
		{Date: D("2024-01-02"), Value: 2200},
		{Date: D("2024-01-03"), Value: 2400},
	}
	if !reflect.DeepEqual(d.History, wantSeries) {
		t.Errorf("NewDashboard().History = %v, want %v", d.History, wantSeries)
	}
	if !near(d.Performance.Return, 20) || !d.Performance.Beat {
		t.Errorf("NewDashboard().Performance = %+v, want 20%% beating SPY", d.Performance)
	}

	if d.Transactions[0].ID != "4" || d.Transactions[3].ID != "1" {
		t.Errorf("NewDashboard().Transactions not sorted most recent first")
	}
	if got := d.Recent(2); len(got) != 2 || got[0].ID != "4" {
		t.Errorf("Recent(2) = %v", got)
	}
	if len(d.Recent(-1)) != 4 {
		t.Errorf("Recent(-1) should return every transaction")
	}

	if r, ok := d.Ranges["X"]; !ok || r.Percent != 100 {
		t.Errorf("NewDashboard().Ranges[X] = %+v, %v, want 100%%", r, ok)
	}
	if len(d.Benchmarks["SPY"]) != 3 || len(d.Benchmarks["QQQ"]) != 0 {
		t.Errorf("NewDashboard().Benchmarks = %v", d.Benchmarks)
	}
	if d.Unavailable {
		t.Errorf("NewDashboard().Unavailable = true with every price loaded")
	}
}

func TestNewDashboardIsPure(t *testing.T) {
	p, prices := testPortfolio(), testPrices()
	first := NewDashboard(p, prices, date.YearToDate, DefaultAssumptions())
	second := NewDashboard(p, prices, date.YearToDate, DefaultAssumptions())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("NewDashboard() is not deterministic")
	}
	if p.Transactions[0].HasPrice() {
		t.Errorf("NewDashboard() mutated the transaction log")
	}
}

func TestNewDashboardDegrades(t *testing.T) {
	prices := testPrices()
	delete(prices.History, "Y")
	prices.Errors = map[string]error{"Y": errors.New("feed unavailable")}

	d := NewDashboard(testPortfolio(), prices, date.OneYear, DefaultAssumptions())
	if !d.Unavailable {
		t.Errorf("NewDashboard().Unavailable = false, want true")
	}
	if len(d.History) != 3 {
		t.Errorf("NewDashboard().History = %v, want the X series", d.History)
	}
}

func TestPortfolioSymbols(t *testing.T) {
	p := testPortfolio()
	p.Transactions = append(p.Transactions, tx("5", "Z", Buy, 1, "2023-06-01"))
	got := p.Symbols(DefaultAssumptions())
	want := []string{"X", "Y", "Z", "SPY", "QQQ", "DIA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Symbols() = %v, want %v", got, want)
	}

	today := D("2024-05-01")
	if r := p.FetchRange(today); r.From != D("2023-06-01") || r.To != today {
		t.Errorf("FetchRange() = %v, want 2023-06-01..2024-05-01", r)
	}
	if r := (Portfolio{}).FetchRange(today); r.From != D("2023-05-01") {
		t.Errorf("FetchRange() without transactions = %v, want the last year", r)
	}
}
