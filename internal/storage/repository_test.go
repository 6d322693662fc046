package storage

import (
	"context"
	"path/filepath"
	"testing"

	"spendlens/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestAppendAndListAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.Append(ctx, core.Expense{
		Date:        core.NewDate(2026, 8, 3),
		Description: "grocery run",
		Amount:      core.Money{Cents: 4520},
		Category:    "food",
		Notes:       "weekly",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if stored.ID == "" {
		t.Fatal("expected assigned ID")
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 record, got %d", len(all))
	}
	got := all[0]
	if got.ID != stored.ID || got.Description != "grocery run" ||
		got.Amount.Cents != 4520 || got.Category != "food" || got.Notes != "weekly" {
		t.Fatalf("record did not round-trip: %+v", got)
	}
	if got.Date.Year() != 2026 || got.Date.Month() != 8 || got.Date.Day() != 3 {
		t.Fatalf("date did not round-trip: %v", got.Date)
	}
}

func TestAppendValidatesAtBoundary(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Append(context.Background(), core.Expense{
		Date:        core.NewDate(2026, 8, 3),
		Description: "",
		Amount:      core.Money{Cents: 100},
		Category:    "food",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRemoveByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.Append(ctx, core.Expense{
		Date:        core.NewDate(2026, 8, 3),
		Description: "cinema",
		Amount:      core.Money{Cents: 1500},
		Category:    "entertainment",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := repo.RemoveByID(ctx, stored.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %d records", len(all))
	}

	if err := repo.RemoveByID(ctx, stored.ID); err != core.ErrNotFound {
		t.Fatalf("expected ErrNotFound for second delete, got %v", err)
	}
}

func TestGetExpense(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.Append(ctx, core.Expense{
		Date:        core.NewDate(2026, 8, 5),
		Description: "gym membership",
		Amount:      core.Money{Cents: 2999},
		Category:    "fitness",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.GetExpense(ctx, stored.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Description != "gym membership" {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, err := repo.GetExpense(ctx, "missing"); err != core.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSettingsDefaultsAndRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	got, err := repo.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TotalBudget.Cents != core.DefaultTotalBudget {
		t.Fatalf("expected default budget, got %d", got.TotalBudget.Cents)
	}

	want := core.Settings{
		TotalBudget: core.Money{Cents: 180000},
		CategoryBudgets: map[string]core.Money{
			"food":   {Cents: 50000},
			"travel": {Cents: 30000},
		},
	}
	if err := repo.SaveSettings(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if got.TotalBudget.Cents != 180000 {
		t.Fatalf("budget did not round-trip: %d", got.TotalBudget.Cents)
	}
	if got.CategoryBudgets["food"].Cents != 50000 || got.CategoryBudgets["travel"].Cents != 30000 {
		t.Fatalf("category budgets did not round-trip: %+v", got.CategoryBudgets)
	}

	// Second save overwrites the single row.
	want.TotalBudget = core.Money{Cents: 220000}
	if err := repo.SaveSettings(ctx, want); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, _ = repo.LoadSettings(ctx)
	if got.TotalBudget.Cents != 220000 {
		t.Fatalf("expected updated budget, got %d", got.TotalBudget.Cents)
	}
}
