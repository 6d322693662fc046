package services

import (
	"context"
	"fmt"
	"log/slog"

	"spendlens/internal/core"
	"spendlens/internal/events"
	"spendlens/internal/ports"
)

// Publisher is the slice of the events client the service needs.
type Publisher interface {
	PublishExpenseEvent(ctx context.Context, id, action string) error
	Close() error
}

// ExpenseService orchestrates expense operations across local storage and
// the optional event stream. The local write is the source of truth;
// publish failures are logged and swallowed.
type ExpenseService struct {
	store     ports.Store
	publisher Publisher
}

func NewExpenseService(store ports.Store, publisher Publisher) *ExpenseService {
	return &ExpenseService{
		store:     store,
		publisher: publisher,
	}
}

// CreateExpense saves an expense locally and publishes a created event.
func (s *ExpenseService) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	stored, err := s.store.Append(ctx, e)
	if err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}

	if err := s.publish(ctx, stored.ID, events.ActionCreated); err != nil {
		slog.ErrorContext(ctx, "Failed to publish created event",
			"id", stored.ID, "error", err)
		// Don't fail the request - expense is saved locally
	}

	return stored, nil
}

// DeleteExpense removes an expense locally and publishes a deleted event.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.store.RemoveByID(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	if err := s.publish(ctx, id, events.ActionDeleted); err != nil {
		slog.ErrorContext(ctx, "Failed to publish deleted event",
			"id", id, "error", err)
		// Don't fail the request - expense is deleted locally
	}

	return nil
}

// ListExpenses returns a stable snapshot for analysis.
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	return s.store.ListAll(ctx)
}

func (s *ExpenseService) publish(ctx context.Context, id, action string) error {
	if s.publisher == nil {
		slog.DebugContext(ctx, "Event publisher not available, skipping", "action", action)
		return nil
	}
	return s.publisher.PublishExpenseEvent(ctx, id, action)
}

// Close closes the publisher connection, if any. Storage is owned by the
// caller that created it.
func (s *ExpenseService) Close() error {
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			return fmt.Errorf("close publisher: %w", err)
		}
	}
	return nil
}
