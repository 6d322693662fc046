// Package memstore is an in-memory implementation of the persistence ports,
// used by tests and the "memory" backend.
package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"spendlens/internal/core"
	"spendlens/internal/ports"
)

type Store struct {
	mu       sync.Mutex
	items    []core.Expense
	settings core.Settings
	hasSet   bool
}

var _ ports.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// Append validates, assigns an ID and stores the expense.
func (s *Store) Append(_ context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	e.ID = uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return e, nil
}

func (s *Store) RemoveByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

// ListAll returns a copy so callers can analyze without holding the lock.
func (s *Store) ListAll(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Store) LoadSettings(_ context.Context) (core.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasSet {
		return core.DefaultSettings(), nil
	}
	return s.settings, nil
}

func (s *Store) SaveSettings(_ context.Context, set core.Settings) error {
	if err := set.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = set
	s.hasSet = true
	return nil
}
