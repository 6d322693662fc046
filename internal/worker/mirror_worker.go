package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"spendlens/internal/core"
	"spendlens/internal/events"
	"spendlens/internal/export"
	"spendlens/internal/log"
)

// ExpenseReader fetches the full record for a created event.
type ExpenseReader interface {
	GetExpense(ctx context.Context, id string) (core.Expense, error)
}

// MirrorWorker consumes expense events and mirrors them into an export
// sink. Created events are re-read from storage so the sink always sees
// the stored record, not what the publisher happened to know.
type MirrorWorker struct {
	reader ExpenseReader
	sink   export.Sink
}

func NewMirrorWorker(reader ExpenseReader, sink export.Sink) *MirrorWorker {
	return &MirrorWorker{
		reader: reader,
		sink:   sink,
	}
}

// HandleEvent processes a single expense event.
func (w *MirrorWorker) HandleEvent(ctx context.Context, msg *events.ExpenseEvent) error {
	switch msg.Action {
	case events.ActionCreated:
		return w.handleCreated(ctx, msg)
	case events.ActionDeleted:
		return w.handleDeleted(ctx, msg)
	default:
		// Unknown actions are dropped, not requeued.
		slog.WarnContext(ctx, "Ignoring unknown event action",
			"id", msg.ID, "action", msg.Action)
		return nil
	}
}

func (w *MirrorWorker) handleCreated(ctx context.Context, msg *events.ExpenseEvent) error {
	e, err := w.reader.GetExpense(ctx, msg.ID)
	if errors.Is(err, core.ErrNotFound) {
		// Deleted before we got to it; the deleted event will follow.
		slog.WarnContext(ctx, "Expense gone before mirroring, skipping", "id", msg.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get expense %s: %w", msg.ID, err)
	}

	if err := w.sink.Record(ctx, events.ActionCreated, e); err != nil {
		return fmt.Errorf("mirror created expense %s: %w", msg.ID, err)
	}

	slog.InfoContext(ctx, "Mirrored created expense",
		log.NewFields().
			WithComponent(log.ComponentWorker).
			WithOperation(log.OpMirror).
			WithExpense(e.ID, e.Description, e.Amount.Cents, e.Category).
			ToSlice()...)
	return nil
}

func (w *MirrorWorker) handleDeleted(ctx context.Context, msg *events.ExpenseEvent) error {
	if err := w.sink.Record(ctx, events.ActionDeleted, core.Expense{ID: msg.ID}); err != nil {
		return fmt.Errorf("mirror deleted expense %s: %w", msg.ID, err)
	}
	slog.InfoContext(ctx, "Mirrored deleted expense",
		log.NewFields().
			WithComponent(log.ComponentWorker).
			WithOperation(log.OpMirror).
			WithEvent(msg.ID, events.ActionDeleted).
			ToSlice()...)
	return nil
}
