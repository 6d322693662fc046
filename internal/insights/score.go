package insights

import (
	"math"
	"time"

	"spendlens/internal/core"
)

// Health score composition. The clamp deliberately never reports a perfect
// or a hopeless score.
const (
	scoreMin = 5
	scoreMax = 99

	budgetWeight      = 0.5
	diversityWeight   = 0.25
	consistencyWeight = 0.25

	diversityTarget   = 6  // distinct categories for a full diversity score
	consistencyTarget = 20 // distinct tracked days for a full consistency score
)

// HealthScore summarizes budget adherence, category diversity and tracking
// consistency for asOf's calendar month as an integer in [5,99]. The second
// return value is false when there are no records at all (the "no data"
// case); it is true otherwise, even when asOf's month itself is empty.
func HealthScore(records []core.Expense, totalBudget core.Money, asOf time.Time) (int, bool) {
	if len(records) == 0 {
		return 0, false
	}

	var monthTotal float64
	cats := make(map[string]struct{})
	days := make(map[int]struct{})
	for _, e := range records {
		if !sameMonth(e.Date, asOf) {
			continue
		}
		monthTotal += e.Amount.Dollars()
		cats[e.Category] = struct{}{}
		days[e.Date.Day()] = struct{}{}
	}

	budgetScore := 0.5
	if totalBudget.Cents > 0 {
		budgetScore = math.Max(0, 1-monthTotal/totalBudget.Dollars())
	}
	diversityScore := math.Min(float64(len(cats))/diversityTarget, 1)
	consistencyScore := math.Min(float64(len(days))/consistencyTarget, 1)

	composite := budgetScore*budgetWeight + diversityScore*diversityWeight + consistencyScore*consistencyWeight
	score := int(math.Round(composite * 100))
	if score < scoreMin {
		score = scoreMin
	}
	if score > scoreMax {
		score = scoreMax
	}
	return score, true
}

func sameMonth(d core.Date, asOf time.Time) bool {
	return d.Year() == asOf.Year() && d.Month() == int(asOf.Month())
}
