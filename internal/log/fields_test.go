package log

import (
	"errors"
	"testing"
)

func TestLogFieldsBuilder(t *testing.T) {
	f := NewFields().
		WithComponent(ComponentWorker).
		WithOperation(OpMirror).
		WithEvent("abc-123", "created").
		WithError(errors.New("boom"))

	if f[FieldComponent] != ComponentWorker {
		t.Fatalf("component = %v", f[FieldComponent])
	}
	if f[FieldExpenseID] != "abc-123" || f[FieldAction] != "created" {
		t.Fatalf("event fields = %v / %v", f[FieldExpenseID], f[FieldAction])
	}
	if f[FieldError] != "boom" {
		t.Fatalf("error field = %v", f[FieldError])
	}

	slice := f.ToSlice()
	if len(slice) != len(f)*2 {
		t.Fatalf("slice length = %d, want %d", len(slice), len(f)*2)
	}
}

func TestWithErrorNil(t *testing.T) {
	f := NewFields().WithError(nil)
	if _, exists := f[FieldError]; exists {
		t.Fatal("nil error must not add a field")
	}
}

func TestWithExpense(t *testing.T) {
	f := NewFields().WithExpense("id-1", "grocery run", 4250, "food")
	if f[FieldAmountCents] != int64(4250) {
		t.Fatalf("amount = %v", f[FieldAmountCents])
	}
	if f[FieldCategory] != "food" {
		t.Fatalf("category = %v", f[FieldCategory])
	}
}
