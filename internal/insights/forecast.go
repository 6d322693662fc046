package insights

import (
	"sort"

	"spendlens/internal/core"
)

// Forecast is a linear extrapolation of monthly total spend into the next
// calendar month. With fewer than two observed months there is nothing to
// fit, so Predicted degrades to the grand total and Slope stays zero.
type Forecast struct {
	Predicted      float64
	Confidence     Confidence
	MonthsObserved int
	Slope          float64
}

// ForecastNextMonth buckets spend by calendar month, fits an ordinary
// least-squares line through (1..N, monthly totals) and predicts month N+1.
// The prediction is clamped to be non-negative and rounded to 2 decimals.
func ForecastNextMonth(records []core.Expense) Forecast {
	totals := make(map[string]float64)
	for _, e := range records {
		totals[e.Date.MonthKey()] += e.Amount.Dollars()
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	n := len(keys)
	if n < 2 {
		var grand float64
		for _, v := range totals {
			grand += v
		}
		return Forecast{
			Predicted:      round2(grand),
			Confidence:     ConfidenceLow,
			MonthsObserved: n,
		}
	}

	// x-values are 1-based sequential month indices, so the denominator
	// n*Σx² - (Σx)² can never be zero here.
	var sumX, sumY, sumXY, sumX2 float64
	for i, k := range keys {
		x := float64(i + 1)
		y := totals[k]
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	fn := float64(n)
	slope := (fn*sumXY - sumX*sumY) / (fn*sumX2 - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn

	predicted := slope*float64(n+1) + intercept
	if predicted < 0 {
		predicted = 0
	}

	confidence := ConfidenceMedium
	if n >= 4 {
		confidence = ConfidenceHigh
	}

	return Forecast{
		Predicted:      round2(predicted),
		Confidence:     confidence,
		MonthsObserved: n,
		Slope:          slope,
	}
}
