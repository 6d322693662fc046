package worker

import (
	"context"
	"errors"
	"testing"

	"spendlens/internal/core"
	"spendlens/internal/events"
)

type fakeReader struct {
	expenses map[string]core.Expense
}

func (r *fakeReader) GetExpense(_ context.Context, id string) (core.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return core.Expense{}, core.ErrNotFound
	}
	return e, nil
}

type fakeSink struct {
	recorded []string // "action:id"
	fail     bool
}

func (s *fakeSink) Record(_ context.Context, action string, e core.Expense) error {
	if s.fail {
		return errors.New("sink unavailable")
	}
	s.recorded = append(s.recorded, action+":"+e.ID)
	return nil
}

func (s *fakeSink) Close() error { return nil }

func TestHandleCreatedMirrorsStoredRecord(t *testing.T) {
	reader := &fakeReader{expenses: map[string]core.Expense{
		"e1": {
			ID:          "e1",
			Date:        core.NewDate(2026, 8, 1),
			Description: "coffee",
			Amount:      core.Money{Cents: 450},
			Category:    "food",
		},
	}}
	sink := &fakeSink{}
	w := NewMirrorWorker(reader, sink)

	err := w.HandleEvent(context.Background(), &events.ExpenseEvent{ID: "e1", Action: events.ActionCreated})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(sink.recorded) != 1 || sink.recorded[0] != "created:e1" {
		t.Fatalf("unexpected sink calls: %v", sink.recorded)
	}
}

func TestHandleCreatedMissingRecordSkips(t *testing.T) {
	sink := &fakeSink{}
	w := NewMirrorWorker(&fakeReader{}, sink)

	// Record already deleted: not an error, nothing mirrored.
	err := w.HandleEvent(context.Background(), &events.ExpenseEvent{ID: "gone", Action: events.ActionCreated})
	if err != nil {
		t.Fatalf("missing record should not error: %v", err)
	}
	if len(sink.recorded) != 0 {
		t.Fatalf("nothing should be mirrored: %v", sink.recorded)
	}
}

func TestHandleDeleted(t *testing.T) {
	sink := &fakeSink{}
	w := NewMirrorWorker(&fakeReader{}, sink)

	err := w.HandleEvent(context.Background(), &events.ExpenseEvent{ID: "e2", Action: events.ActionDeleted})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(sink.recorded) != 1 || sink.recorded[0] != "deleted:e2" {
		t.Fatalf("unexpected sink calls: %v", sink.recorded)
	}
}

func TestHandleEventSinkFailurePropagates(t *testing.T) {
	sink := &fakeSink{fail: true}
	w := NewMirrorWorker(&fakeReader{}, sink)

	err := w.HandleEvent(context.Background(), &events.ExpenseEvent{ID: "e3", Action: events.ActionDeleted})
	if err == nil {
		t.Fatal("sink failure should surface so the event is requeued")
	}
}

func TestHandleEventUnknownActionDropped(t *testing.T) {
	sink := &fakeSink{}
	w := NewMirrorWorker(&fakeReader{}, sink)

	err := w.HandleEvent(context.Background(), &events.ExpenseEvent{ID: "e4", Action: "renamed"})
	if err != nil {
		t.Fatalf("unknown action should be dropped silently: %v", err)
	}
	if len(sink.recorded) != 0 {
		t.Fatalf("nothing should be mirrored: %v", sink.recorded)
	}
}
