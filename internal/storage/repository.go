package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"spendlens/internal/core"
	"spendlens/internal/ports"
)

// SQLiteRepository is the durable implementation of the persistence ports.
type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

var _ ports.Store = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements ports.ExpenseAppender. The record is validated at this
// boundary; the analytics core assumes well-formed input.
func (r *SQLiteRepository) Append(ctx context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}

	row, err := r.queries.CreateExpense(ctx, CreateExpenseParams{
		ID:          uuid.NewString(),
		Date:        e.Date.Format("2006-01-02"),
		Description: e.Description,
		AmountCents: e.Amount.Cents,
		Category:    e.Category,
		Notes:       e.Notes,
	})
	if err != nil {
		return core.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", row.ID,
		"description", row.Description,
		"amount_cents", row.AmountCents,
		"category", row.Category)

	return rowToExpense(row)
}

// RemoveByID implements ports.ExpenseRemover. Deletion is permanent, there
// is no tombstone.
func (r *SQLiteRepository) RemoveByID(ctx context.Context, id string) error {
	affected, err := r.queries.DeleteExpense(ctx, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if affected == 0 {
		return core.ErrNotFound
	}
	slog.InfoContext(ctx, "Expense removed", "id", id)
	return nil
}

// ListAll implements ports.ExpenseLister.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.queries.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	out := make([]core.Expense, 0, len(rows))
	for _, row := range rows {
		e, err := rowToExpense(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// GetExpense retrieves a single expense by ID, for the event worker.
func (r *SQLiteRepository) GetExpense(ctx context.Context, id string) (core.Expense, error) {
	row, err := r.queries.GetExpense(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, core.ErrNotFound
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("get expense: %w", err)
	}
	return rowToExpense(row)
}

// LoadSettings implements ports.SettingsStore. A missing row yields the
// defaults rather than an error.
func (r *SQLiteRepository) LoadSettings(ctx context.Context) (core.Settings, error) {
	row, err := r.queries.GetSettings(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return core.DefaultSettings(), nil
	}
	if err != nil {
		return core.Settings{}, fmt.Errorf("get settings: %w", err)
	}

	var budgets map[string]int64
	if err := json.Unmarshal([]byte(row.CategoryBudgets), &budgets); err != nil {
		return core.Settings{}, fmt.Errorf("decode category budgets: %w", err)
	}
	s := core.Settings{TotalBudget: core.Money{Cents: row.TotalBudgetCents}}
	if len(budgets) > 0 {
		s.CategoryBudgets = make(map[string]core.Money, len(budgets))
		for k, cents := range budgets {
			s.CategoryBudgets[k] = core.Money{Cents: cents}
		}
	}
	return s, nil
}

// SaveSettings implements ports.SettingsStore.
func (r *SQLiteRepository) SaveSettings(ctx context.Context, s core.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	budgets := make(map[string]int64, len(s.CategoryBudgets))
	for k, m := range s.CategoryBudgets {
		budgets[k] = m.Cents
	}
	encoded, err := json.Marshal(budgets)
	if err != nil {
		return fmt.Errorf("encode category budgets: %w", err)
	}

	if err := r.queries.UpsertSettings(ctx, s.TotalBudget.Cents, string(encoded)); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	slog.InfoContext(ctx, "Settings saved", "total_budget_cents", s.TotalBudget.Cents)
	return nil
}

func rowToExpense(row Expense) (core.Expense, error) {
	d, err := parseDate(row.Date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse stored date %q: %w", row.Date, err)
	}
	return core.Expense{
		ID:          row.ID,
		Date:        d,
		Description: row.Description,
		Amount:      core.Money{Cents: row.AmountCents},
		Category:    row.Category,
		Notes:       row.Notes,
	}, nil
}
