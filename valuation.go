package sharpeful

// Valuation is a holding marked to its latest price.
type Valuation struct {
	Holding
	Price       float64 `json:"price"`
	Priced      bool    `json:"priced"` // false when no latest price was available
	Value       float64 `json:"value"`
	Cost        float64 `json:"cost"`
	Gain        float64 `json:"gain"`
	GainPercent float64 `json:"gainPercent"`
}

// Appraise marks every holding to its latest price. Missing prices count as 0.
func Appraise(holdings []Holding, latest map[string]float64) []Valuation {
	vals := make([]Valuation, 0, len(holdings))
	for _, h := range holdings {
		price, ok := latest[h.Symbol]
		shares := h.Shares.InexactFloat64()
		v := Valuation{
			Holding: h,
			Price:   price,
			Priced:  ok,
			Value:   price * shares,
			Cost:    h.CostBasis.InexactFloat64() * shares,
		}
		v.Gain = v.Value - v.Cost
		if v.Cost != 0 {
			v.GainPercent = v.Gain / v.Cost * 100
		}
		vals = append(vals, v)
	}
	return vals
}

// Totals sums valuations over the whole portfolio.
type Totals struct {
	Value       float64 `json:"value"`
	Cost        float64 `json:"cost"`
	Gain        float64 `json:"gain"`
	GainPercent float64 `json:"gainPercent"`
}

// Total returns the totals of vals.
func Total(vals []Valuation) Totals {
	var t Totals
	for _, v := range vals {
		t.Value += v.Value
		t.Cost += v.Cost
	}
	t.Gain = t.Value - t.Cost
	if t.Cost != 0 {
		t.GainPercent = t.Gain / t.Cost * 100
	}
	return t
}
