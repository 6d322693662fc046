// Package export holds the sinks the event worker mirrors expenses into.
// Sinks are append-only streams: a delete is recorded as its own entry
// rather than rewriting earlier ones.
package export

import (
	"context"

	"spendlens/internal/core"
)

// Sink receives expense events in order. For deleted records only the ID
// field of the expense is populated, since the row is already gone from
// local storage.
type Sink interface {
	Record(ctx context.Context, action string, e core.Expense) error
	Close() error
}
