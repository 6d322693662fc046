package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"spendlens/internal/core"
)

// JSONLSink appends one JSON object per event to a local file. This is the
// "best effort local save" backup: fsync is not forced, and a torn final
// line after a crash is acceptable.
type JSONLSink struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

type jsonlEntry struct {
	Action      string    `json:"action"`
	ID          string    `json:"id"`
	Date        string    `json:"date,omitempty"`
	Description string    `json:"description,omitempty"`
	AmountCents int64     `json:"amount_cents,omitempty"`
	Category    string    `json:"category,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

func NewJSONLSink(path string) (*JSONLSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open export file: %w", err)
	}
	return &JSONLSink{file: f, enc: json.NewEncoder(f)}, nil
}

func (s *JSONLSink) Record(_ context.Context, action string, e core.Expense) error {
	entry := jsonlEntry{
		Action:     action,
		ID:         e.ID,
		RecordedAt: time.Now(),
	}
	if !e.Date.IsZero() {
		entry.Date = e.Date.Format("2006-01-02")
		entry.Description = e.Description
		entry.AmountCents = e.Amount.Cents
		entry.Category = e.Category
		entry.Notes = e.Notes
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(entry); err != nil {
		return fmt.Errorf("write export entry: %w", err)
	}
	return nil
}

func (s *JSONLSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
