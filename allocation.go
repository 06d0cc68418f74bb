package sharpeful

import (
	"cmp"
	"slices"
)

// MaxSectors is the number of sectors shown before the rest is collapsed into Other.
const MaxSectors = 9

// SectorWeight is the market value of a sector and its share of the portfolio.
type SectorWeight struct {
	Sector  Sector  `json:"sector"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

// Allocate groups vals by sector, sorted by value descending. Beyond MaxSectors the
// smallest sectors are merged into a single Other entry.
func Allocate(vals []Valuation) []SectorWeight {
	bySector := make(map[Sector]float64)
	var total float64
	for _, v := range vals {
		bySector[v.Sector] += v.Value
		total += v.Value
	}

	weights := make([]SectorWeight, 0, len(bySector))
	for s, value := range bySector {
		weights = append(weights, SectorWeight{Sector: s, Value: value})
	}
	slices.SortFunc(weights, func(a, b SectorWeight) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Sector, b.Sector)
	})

	if len(weights) > MaxSectors {
		var rest float64
		for _, w := range weights[MaxSectors:] {
			rest += w.Value
		}
		weights = weights[:MaxSectors]
		if i := slices.IndexFunc(weights, func(w SectorWeight) bool { return w.Sector == Other }); i >= 0 {
			weights[i].Value += rest
		} else {
			weights = append(weights, SectorWeight{Sector: Other, Value: rest})
		}
	}

	for i := range weights {
		if total != 0 {
			weights[i].Percent = weights[i].Value / total * 100
		}
	}
	return weights
}

// TopHoldings returns the n largest positions by market value.
func TopHoldings(vals []Valuation, n int) []Valuation {
	sorted := slices.Clone(vals)
	slices.SortStableFunc(sorted, func(a, b Valuation) int { return cmp.Compare(b.Value, a.Value) })
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// BestPerformers returns vals sorted by unrealized gain percentage, best first.
func BestPerformers(vals []Valuation) []Valuation {
	sorted := slices.Clone(vals)
	slices.SortStableFunc(sorted, func(a, b Valuation) int { return cmp.Compare(b.GainPercent, a.GainPercent) })
	return sorted
}
