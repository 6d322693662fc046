package insights

import (
	"fmt"
	"time"

	"spendlens/internal/catalog"
	"spendlens/internal/core"
)

// Tip rule thresholds.
const (
	// MaxTips bounds the returned list; the current cascade emits at most
	// five anyway, so this is a safety bound.
	MaxTips = 5

	topShareThreshold     = 0.40
	lowRemainingShare     = 0.15
	foodTipThreshold      = 200.0
	subscriptionThreshold = 100.0
)

// Tips runs a fixed cascade of rules over asOf's calendar month and returns
// short advice strings, at most MaxTips of them. Each rule appends zero or
// one tip; the order of the cascade is part of the contract so callers can
// rely on stable output for a given snapshot. No records at all means no
// tips.
func Tips(cat catalog.Catalog, records []core.Expense, totalBudget core.Money, asOf time.Time) []string {
	if len(records) == 0 {
		return nil
	}

	var monthTotal float64
	byCategory := make(map[string]float64)
	for _, e := range records {
		if !sameMonth(e.Date, asOf) {
			continue
		}
		monthTotal += e.Amount.Dollars()
		byCategory[e.Category] += e.Amount.Dollars()
	}

	var tips []string

	// Rule 1: top category share of the month's spend.
	if monthTotal > 0 {
		topKey, topAmount := "", 0.0
		for _, def := range cat.Definitions() {
			if amt, ok := byCategory[def.Key]; ok && amt > topAmount {
				topKey, topAmount = def.Key, amt
			}
		}
		share := topAmount / monthTotal
		if share > topShareThreshold {
			def := cat.Lookup(topKey)
			tips = append(tips, fmt.Sprintf(
				"%s %s is your biggest expense at $%.2f (%.0f%% of this month). Consider setting a cap for it.",
				def.Glyph, def.Label, topAmount, share*100))
		} else {
			tips = append(tips, "✅ Your spending looks balanced across categories this month.")
		}
	}

	// Rule 2: budget remaining.
	if totalBudget.Cents > 0 {
		budget := totalBudget.Dollars()
		remaining := budget - monthTotal
		switch {
		case remaining < 0:
			tips = append(tips, fmt.Sprintf(
				"🚨 You are $%.2f over your monthly budget. Time to slow down.", -remaining))
		case remaining < lowRemainingShare*budget:
			daily := remaining / float64(daysRemaining(asOf))
			tips = append(tips, fmt.Sprintf(
				"⚠️ Only $%.2f of your budget left. That is about $%.2f per day for the rest of the month.",
				remaining, daily))
		default:
			tips = append(tips, fmt.Sprintf(
				"👍 $%.2f of your budget remaining (%.0f%%). Keep it up.",
				remaining, remaining/budget*100))
		}
	}

	// Rule 3: heavy food spend.
	if food := byCategory["food"]; food > foodTipThreshold {
		tips = append(tips, fmt.Sprintf(
			"🍳 You spent $%.2f on food this month. Meal prepping could bring that down.", food))
	}

	// Rule 4: bills plus entertainment suggests a subscription audit.
	if combined := byCategory["bills"] + byCategory["entertainment"]; combined > subscriptionThreshold {
		tips = append(tips, fmt.Sprintf(
			"🔍 Bills and entertainment add up to $%.2f. Worth auditing your subscriptions.", combined))
	}

	// Rule 5: nothing tracked under investments.
	if monthTotal > 0 && byCategory["investments"] == 0 {
		tips = append(tips, "💡 No investments tracked this month. Even small regular amounts add up.")
	}

	if len(tips) > MaxTips {
		tips = tips[:MaxTips]
	}
	return tips
}

// daysRemaining counts the days left in asOf's month, inclusive of today.
func daysRemaining(asOf time.Time) int {
	lastDay := time.Date(asOf.Year(), asOf.Month()+1, 0, 0, 0, 0, 0, asOf.Location()).Day()
	return lastDay - asOf.Day() + 1
}
