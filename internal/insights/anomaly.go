package insights

import (
	"math"

	"spendlens/internal/core"
)

// Anomaly detection tuning. The caps and threshold are simple heuristics,
// kept as named constants rather than anything configurable at runtime.
const (
	anomalyZThreshold = 1.8
	minGroupSize      = 3
	// MaxAnomalies bounds the number of flagged records returned.
	MaxAnomalies = 5
)

// Anomaly is a record whose amount deviates from its category mean by more
// than anomalyZThreshold standard deviations.
type Anomaly struct {
	Expense   core.Expense
	ZScore    float64 // rounded to 1 decimal
	GroupMean float64 // rounded to 2 decimals
}

// DetectAnomalies flags records that are outliers within their own category.
// Groups with fewer than minGroupSize members or zero variance are skipped;
// output follows category first-seen order then record order, truncated to
// MaxAnomalies. Population statistics are used (divide by N).
func DetectAnomalies(records []core.Expense) []Anomaly {
	var order []string
	groups := make(map[string][]core.Expense)
	for _, e := range records {
		if _, seen := groups[e.Category]; !seen {
			order = append(order, e.Category)
		}
		groups[e.Category] = append(groups[e.Category], e)
	}

	var out []Anomaly
	for _, key := range order {
		group := groups[key]
		if len(group) < minGroupSize {
			continue
		}

		var sum float64
		for _, e := range group {
			sum += e.Amount.Dollars()
		}
		mean := sum / float64(len(group))

		var variance float64
		for _, e := range group {
			d := e.Amount.Dollars() - mean
			variance += d * d
		}
		variance /= float64(len(group))
		stddev := math.Sqrt(variance)
		if stddev == 0 {
			continue
		}

		for _, e := range group {
			z := math.Abs(e.Amount.Dollars()-mean) / stddev
			if z <= anomalyZThreshold {
				continue
			}
			out = append(out, Anomaly{
				Expense:   e,
				ZScore:    round1(z),
				GroupMean: round2(mean),
			})
			if len(out) >= MaxAnomalies {
				return out
			}
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
