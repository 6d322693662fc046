package insights

import (
	"testing"
	"time"

	"spendlens/internal/core"
)

var asOf = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

func TestHealthScoreNoData(t *testing.T) {
	if _, ok := HealthScore(nil, core.Money{Cents: 100000}, asOf); ok {
		t.Fatal("expected no-data sentinel for empty input")
	}
}

func TestHealthScoreClampedRange(t *testing.T) {
	records := []core.Expense{
		{Date: core.NewDate(2026, 8, 1), Description: "x", Amount: core.Money{Cents: 0}, Category: "food"},
	}
	score, ok := HealthScore(records, core.Money{Cents: 100000}, asOf)
	if !ok {
		t.Fatal("expected a score with one record")
	}
	if score < 5 || score > 99 {
		t.Fatalf("score %d outside [5,99]", score)
	}
}

func TestHealthScoreOverBudgetFloors(t *testing.T) {
	// Month total far above budget: budget score floors at 0, remaining
	// components are tiny, so the final clamp to 5 kicks in.
	records := []core.Expense{
		{Date: core.NewDate(2026, 8, 1), Description: "x", Amount: core.Money{Cents: 900000}, Category: "food"},
	}
	score, ok := HealthScore(records, core.Money{Cents: 10000}, asOf)
	if !ok {
		t.Fatal("expected a score")
	}
	// budget 0, diversity 1/6, consistency 1/20:
	// round((0 + (1.0/6)*0.25 + 0.05*0.25) * 100) = round(5.42) = 5
	if score != 5 {
		t.Fatalf("expected floor of 5, got %d", score)
	}
}

func TestHealthScoreZeroBudgetNeutral(t *testing.T) {
	records := []core.Expense{
		{Date: core.NewDate(2026, 8, 3), Description: "x", Amount: core.Money{Cents: 5000}, Category: "food"},
		{Date: core.NewDate(2026, 8, 4), Description: "y", Amount: core.Money{Cents: 5000}, Category: "transport"},
	}
	score, ok := HealthScore(records, core.Money{}, asOf)
	if !ok {
		t.Fatal("expected a score")
	}
	// budget 0.5 neutral, diversity 2/6, consistency 2/20:
	// round((0.5*0.5 + (2.0/6)*0.25 + 0.1*0.25) * 100) = round(35.83) = 36
	if score != 36 {
		t.Fatalf("expected 36, got %d", score)
	}
}

func TestHealthScoreIgnoresOtherMonths(t *testing.T) {
	// Records exist but none in asOf's month: full budget score, zero
	// diversity and consistency.
	records := []core.Expense{
		{Date: core.NewDate(2026, 7, 1), Description: "x", Amount: core.Money{Cents: 5000}, Category: "food"},
	}
	score, ok := HealthScore(records, core.Money{Cents: 100000}, asOf)
	if !ok {
		t.Fatal("expected a score; no-data only applies to a fully empty snapshot")
	}
	if score != 50 {
		t.Fatalf("expected 50, got %d", score)
	}
}

func TestHealthScoreIdempotent(t *testing.T) {
	records := []core.Expense{
		{Date: core.NewDate(2026, 8, 3), Description: "x", Amount: core.Money{Cents: 12300}, Category: "food"},
		{Date: core.NewDate(2026, 8, 9), Description: "y", Amount: core.Money{Cents: 4500}, Category: "bills"},
	}
	a, okA := HealthScore(records, core.Money{Cents: 100000}, asOf)
	b, okB := HealthScore(records, core.Money{Cents: 100000}, asOf)
	if a != b || okA != okB {
		t.Fatalf("results differ: (%d,%v) vs (%d,%v)", a, okA, b, okB)
	}
}
