// Package insights is the analytics engine: pure, deterministic functions
// over a snapshot of expense records. Nothing here mutates its input,
// touches a clock, or performs I/O; callers pass the snapshot, the budget
// and an explicit "as of" date where month-relative math is involved.
package insights

import (
	"strings"

	"spendlens/internal/catalog"
)

// Confidence is a coarse qualitative label attached to a categorization
// or forecast.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Keyword scoring weights. Longer keywords are stronger evidence.
const (
	longKeywordLen   = 5
	longKeywordScore = 2 + 1
	keywordScore     = 2
)

// Suggestion is the result of classifying a free-text description.
type Suggestion struct {
	Category   string
	Confidence Confidence
	Score      int
}

// Categorize scores description against every non-fallback category in cat
// and returns the best match. Each keyword is checked once as a substring
// of the lowercased input; repeated occurrences do not add score. Ties keep
// the first category in catalog order, and a zero score falls back to the
// catch-all category.
func Categorize(cat catalog.Catalog, description string) Suggestion {
	text := strings.ToLower(description)

	best := Suggestion{Category: catalog.FallbackKey}
	for _, def := range cat.Definitions() {
		if def.Key == catalog.FallbackKey {
			continue
		}
		score := 0
		for _, kw := range def.Keywords {
			if !strings.Contains(text, kw) {
				continue
			}
			if len(kw) > longKeywordLen {
				score += longKeywordScore
			} else {
				score += keywordScore
			}
		}
		if score > best.Score {
			best.Category = def.Key
			best.Score = score
		}
	}

	best.Confidence = scoreConfidence(best.Score)
	return best
}

func scoreConfidence(score int) Confidence {
	switch {
	case score >= 6:
		return ConfidenceHigh
	case score >= 2:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
