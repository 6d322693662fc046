package storage

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB / *sql.Tx the queries need.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

// Expense is the database row shape.
type Expense struct {
	ID          string
	Date        string // YYYY-MM-DD
	Description string
	AmountCents int64
	Category    string
	Notes       string
}

type CreateExpenseParams struct {
	ID          string
	Date        string
	Description string
	AmountCents int64
	Category    string
	Notes       string
}

const createExpense = `
INSERT INTO expenses (id, date, description, amount_cents, category, notes)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, date, description, amount_cents, category, notes
`

func (q *Queries) CreateExpense(ctx context.Context, arg CreateExpenseParams) (Expense, error) {
	row := q.db.QueryRowContext(ctx, createExpense,
		arg.ID, arg.Date, arg.Description, arg.AmountCents, arg.Category, arg.Notes)
	var e Expense
	err := row.Scan(&e.ID, &e.Date, &e.Description, &e.AmountCents, &e.Category, &e.Notes)
	return e, err
}

const deleteExpense = `
DELETE FROM expenses WHERE id = ?
`

// DeleteExpense removes a row and reports how many rows were affected.
func (q *Queries) DeleteExpense(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteExpense, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const listExpenses = `
SELECT id, date, description, amount_cents, category, notes
FROM expenses
ORDER BY created_at, id
`

func (q *Queries) ListExpenses(ctx context.Context) ([]Expense, error) {
	rows, err := q.db.QueryContext(ctx, listExpenses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Description, &e.AmountCents, &e.Category, &e.Notes); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const getExpense = `
SELECT id, date, description, amount_cents, category, notes
FROM expenses WHERE id = ?
`

func (q *Queries) GetExpense(ctx context.Context, id string) (Expense, error) {
	row := q.db.QueryRowContext(ctx, getExpense, id)
	var e Expense
	err := row.Scan(&e.ID, &e.Date, &e.Description, &e.AmountCents, &e.Category, &e.Notes)
	return e, err
}

// SettingsRow is the single settings row.
type SettingsRow struct {
	TotalBudgetCents int64
	CategoryBudgets  string // JSON object, category key -> cents
}

const getSettings = `
SELECT total_budget_cents, category_budgets FROM settings WHERE id = 1
`

func (q *Queries) GetSettings(ctx context.Context) (SettingsRow, error) {
	row := q.db.QueryRowContext(ctx, getSettings)
	var s SettingsRow
	err := row.Scan(&s.TotalBudgetCents, &s.CategoryBudgets)
	return s, err
}

const upsertSettings = `
INSERT INTO settings (id, total_budget_cents, category_budgets, updated_at)
VALUES (1, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (id) DO UPDATE SET
    total_budget_cents = excluded.total_budget_cents,
    category_budgets = excluded.category_budgets,
    updated_at = CURRENT_TIMESTAMP
`

func (q *Queries) UpsertSettings(ctx context.Context, totalBudgetCents int64, categoryBudgets string) error {
	_, err := q.db.ExecContext(ctx, upsertSettings, totalBudgetCents, categoryBudgets)
	return err
}
