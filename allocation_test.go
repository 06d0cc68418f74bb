package sharpeful

import "testing"

func valuation(symbol string, sector Sector, value, cost float64) Valuation {
	v := Valuation{Holding: Holding{Instrument: Instrument{Symbol: symbol, Name: symbol, Sector: sector}}, Value: value, Cost: cost}
	v.Gain = value - cost
	if cost != 0 {
		v.GainPercent = v.Gain / cost * 100
	}
	return v
}

func TestAppraise(t *testing.T) {
	holdings := []Holding{
		{Instrument: Instrument{Symbol: "A"}, Shares: Q(10), CostBasis: Q(5)},
		{Instrument: Instrument{Symbol: "B"}, Shares: Q(2), CostBasis: Q(0)},
		{Instrument: Instrument{Symbol: "C"}, Shares: Q(1), CostBasis: Q(3)},
	}
	vals := Appraise(holdings, map[string]float64{"A": 6, "B": 1})

	if v := vals[0]; !v.Priced || v.Value != 60 || v.Cost != 50 || v.Gain != 10 || !near(v.GainPercent, 20) {
		t.Errorf("Appraise()[A] = %+v", v)
	}
	if v := vals[1]; v.GainPercent != 0 {
		t.Errorf("Appraise()[B].GainPercent = %v, want 0 without cost", v.GainPercent)
	}
	if v := vals[2]; v.Priced || v.Value != 0 || v.Gain != -3 {
		t.Errorf("Appraise()[C] = %+v, want unpriced", v)
	}

	total := Total(vals)
	if total.Value != 62 || total.Cost != 53 || total.Gain != 9 {
		t.Errorf("Total() = %+v, want 62 53 9", total)
	}
}

func TestAllocate(t *testing.T) {
	vals := []Valuation{
		valuation("A", Technology, 50, 0),
		valuation("B", Technology, 25, 0),
		valuation("C", Energy, 25, 0),
	}
	got := Allocate(vals)
	if len(got) != 2 {
		t.Fatalf("Allocate() = %v, want 2 sectors", got)
	}
	if got[0].Sector != Technology || got[0].Value != 75 || !near(got[0].Percent, 75) {
		t.Errorf("Allocate()[0] = %+v, want Technology 75 75%%", got[0])
	}
	if got[1].Sector != Energy || !near(got[1].Percent, 25) {
		t.Errorf("Allocate()[1] = %+v, want Energy 25%%", got[1])
	}
}

func TestAllocateCollapsesTail(t *testing.T) {
	sectors := []Sector{Technology, Financial, Healthcare, Consumer, Industrials, Energy, RealEstate, Utilities, Materials, Communication, ETF}
	var vals []Valuation
	for i, s := range sectors {
		vals = append(vals, valuation(s.String(), s, float64(100-i), 0))
	}
	got := Allocate(vals)
	if len(got) != MaxSectors+1 {
		t.Fatalf("Allocate() has %d entries, want %d", len(got), MaxSectors+1)
	}
	last := got[MaxSectors]
	if last.Sector != Other || last.Value != 91+90 {
		t.Errorf("Allocate() tail = %+v, want Other 181", last)
	}
	var percent float64
	for _, w := range got {
		percent += w.Percent
	}
	if !near(percent, 100) {
		t.Errorf("Allocate() percentages sum to %v, want 100", percent)
	}

	// an existing Other sector among the top absorbs the tail
	vals = append(vals, valuation("O", Other, 1000, 0))
	got = Allocate(vals)
	if len(got) != MaxSectors {
		t.Fatalf("Allocate() with Other has %d entries, want %d", len(got), MaxSectors)
	}
	if got[0].Sector != Other || got[0].Value != 1000+92+91+90 {
		t.Errorf("Allocate()[0] = %+v, want Other with the tail", got[0])
	}
}

func TestRankings(t *testing.T) {
	vals := []Valuation{
		valuation("A", Technology, 100, 100),
		valuation("B", Technology, 300, 400),
		valuation("C", Technology, 200, 100),
		valuation("D", Technology, 50, 10),
		valuation("E", Technology, 10, 10),
		valuation("F", Technology, 500, 500),
	}
	top := TopHoldings(vals, 5)
	want := []string{"F", "B", "C", "A", "D"}
	if len(top) != len(want) {
		t.Fatalf("TopHoldings() = %v, want %v", top, want)
	}
	for i, s := range want {
		if top[i].Symbol != s {
			t.Errorf("TopHoldings()[%d] = %v, want %v", i, top[i].Symbol, s)
		}
	}

	best := BestPerformers(vals)
	wantBest := []string{"D", "C", "A", "E", "F", "B"}
	for i, s := range wantBest {
		if best[i].Symbol != s {
			t.Errorf("BestPerformers()[%d] = %v, want %v", i, best[i].Symbol, s)
		}
	}
	if vals[0].Symbol != "A" {
		t.Errorf("rankings reordered their input")
	}
}

func TestRangePosition(t *testing.T) {
	series := []PricePoint{
		{Date: D("2023-01-01"), Close: 1000}, // outside the trailing year
		{Date: D("2024-01-01"), Close: 50},
		{Date: D("2024-06-01"), Close: 150},
		{Date: D("2024-12-31"), Close: 100},
	}
	got, ok := NewRangePosition(series, 125)
	if !ok || got.Low != 50 || got.High != 150 || !near(got.Percent, 75) {
		t.Errorf("NewRangePosition() = %+v, %v, want 75%% of 50..150", got, ok)
	}

	if _, ok := NewRangePosition(series, 0); ok {
		t.Errorf("NewRangePosition() without current price ok = true")
	}
	if _, ok := NewRangePosition(nil, 10); ok {
		t.Errorf("NewRangePosition(nil) ok = true")
	}
	flat, ok := NewRangePosition([]PricePoint{{Date: D("2024-01-01"), Close: 10}}, 12)
	if !ok || flat.Percent != 0 || flat.Low != 10 || flat.High != 10 {
		t.Errorf("NewRangePosition(flat) = %+v, %v, want 0%%", flat, ok)
	}
}
