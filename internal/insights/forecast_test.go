package insights

import (
	"math"
	"testing"

	"spendlens/internal/core"
)

func monthExpense(year, month int, cents int64) core.Expense {
	return core.Expense{
		Date:        core.NewDate(year, month, 15),
		Description: "test",
		Amount:      core.Money{Cents: cents},
		Category:    "food",
	}
}

func TestForecastNoRecords(t *testing.T) {
	got := ForecastNextMonth(nil)
	if got.Predicted != 0 || got.Confidence != ConfidenceLow || got.MonthsObserved != 0 {
		t.Fatalf("unexpected forecast for empty input: %+v", got)
	}
}

func TestForecastSingleMonth(t *testing.T) {
	records := []core.Expense{
		monthExpense(2026, 5, 10000),
		monthExpense(2026, 5, 20000),
	}
	got := ForecastNextMonth(records)
	if got.Predicted != 300 {
		t.Fatalf("expected predicted 300, got %v", got.Predicted)
	}
	if got.Confidence != ConfidenceLow {
		t.Fatalf("expected Low, got %s", got.Confidence)
	}
	if got.MonthsObserved != 1 {
		t.Fatalf("expected 1 month, got %d", got.MonthsObserved)
	}
	if got.Slope != 0 {
		t.Fatalf("expected zero slope, got %v", got.Slope)
	}
}

func TestForecastTwoMonthsExtrapolates(t *testing.T) {
	records := []core.Expense{
		monthExpense(2026, 4, 10000), // 100 total
		monthExpense(2026, 5, 20000), // 200 total
	}
	got := ForecastNextMonth(records)
	if got.MonthsObserved != 2 {
		t.Fatalf("expected 2 months, got %d", got.MonthsObserved)
	}
	if got.Confidence != ConfidenceMedium {
		t.Fatalf("expected Medium, got %s", got.Confidence)
	}
	if got.Slope <= 0 {
		t.Fatalf("expected positive slope, got %v", got.Slope)
	}
	if math.Abs(got.Predicted-300) > 0.01 {
		t.Fatalf("expected ~300 at month 3, got %v", got.Predicted)
	}
}

func TestForecastFourMonthsHighConfidence(t *testing.T) {
	records := []core.Expense{
		monthExpense(2026, 1, 10000),
		monthExpense(2026, 2, 15000),
		monthExpense(2026, 3, 20000),
		monthExpense(2026, 4, 25000),
	}
	got := ForecastNextMonth(records)
	if got.Confidence != ConfidenceHigh {
		t.Fatalf("expected High with 4 months, got %s", got.Confidence)
	}
	if math.Abs(got.Predicted-300) > 0.01 {
		t.Fatalf("expected ~300, got %v", got.Predicted)
	}
}

func TestForecastClampsNegativePrediction(t *testing.T) {
	records := []core.Expense{
		monthExpense(2026, 1, 100000), // 1000
		monthExpense(2026, 2, 10000),  // 100
	}
	got := ForecastNextMonth(records)
	if got.Predicted != 0 {
		t.Fatalf("steeply falling trend should clamp to 0, got %v", got.Predicted)
	}
	if got.Slope >= 0 {
		t.Fatalf("expected negative slope, got %v", got.Slope)
	}
}

func TestForecastBucketsAcrossYearBoundary(t *testing.T) {
	records := []core.Expense{
		monthExpense(2025, 12, 10000),
		monthExpense(2026, 1, 20000),
		monthExpense(2026, 2, 30000),
	}
	got := ForecastNextMonth(records)
	if got.MonthsObserved != 3 {
		t.Fatalf("expected 3 months, got %d", got.MonthsObserved)
	}
	// Buckets sort chronologically: 2025-12, 2026-01, 2026-02.
	if math.Abs(got.Predicted-400) > 0.01 {
		t.Fatalf("expected ~400, got %v", got.Predicted)
	}
}
