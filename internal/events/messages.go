package events

import (
	"encoding/json"
	"time"
)

// Actions carried on the expense event stream.
const (
	ActionCreated = "created"
	ActionDeleted = "deleted"
)

// ExpenseEvent is a lightweight message published whenever an expense is
// created or deleted. Consumers fetch the full record from storage by ID;
// deleted events carry only the ID since the row is already gone.
type ExpenseEvent struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// NewExpenseEvent creates an event for the given record ID and action.
func NewExpenseEvent(id, action string) *ExpenseEvent {
	return &ExpenseEvent{
		ID:        id,
		Action:    action,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes
func (m *ExpenseEvent) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseEventFromJSON creates an event from JSON bytes
func ExpenseEventFromJSON(data []byte) (*ExpenseEvent, error) {
	var msg ExpenseEvent
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
