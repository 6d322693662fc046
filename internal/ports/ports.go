package ports

import (
	"context"

	"spendlens/internal/core"
)

// Ports for outbound adapters.
type (
	ExpenseAppender interface {
		// Append stores the expense, assigns its ID and returns the
		// stored record.
		Append(ctx context.Context, e core.Expense) (core.Expense, error)
	}

	ExpenseRemover interface {
		// RemoveByID deletes a record permanently. Unknown IDs return
		// core.ErrNotFound.
		RemoveByID(ctx context.Context, id string) error
	}

	// ExpenseLister returns a snapshot of every stored record, in
	// insertion order. Analytics functions are invoked on the returned
	// slice, never on live store internals.
	ExpenseLister interface {
		ListAll(ctx context.Context) ([]core.Expense, error)
	}

	// SettingsStore loads and saves budget settings. Load returns
	// defaults when nothing has been saved yet.
	SettingsStore interface {
		LoadSettings(ctx context.Context) (core.Settings, error)
		SaveSettings(ctx context.Context, s core.Settings) error
	}

	// Store is the full persistence surface the application needs.
	Store interface {
		ExpenseAppender
		ExpenseRemover
		ExpenseLister
		SettingsStore
	}
)
