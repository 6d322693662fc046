package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"spendlens/internal/core"
	"spendlens/internal/insights"
)

type expenseJSON struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	AmountCents int64   `json:"amount_cents"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Notes       string  `json:"notes,omitempty"`
}

func toExpenseJSON(e core.Expense) expenseJSON {
	return expenseJSON{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		Description: e.Description,
		AmountCents: e.Amount.Cents,
		Amount:      e.Amount.Dollars(),
		Category:    e.Category,
		Notes:       e.Notes,
	}
}

type createExpenseRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Notes       string `json:"notes"`
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListExpenses(w, r)
	case http.MethodPost:
		s.handleCreateExpense(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.ListExpenses(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List expenses error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}

	out := make([]expenseJSON, 0, len(items))
	for _, e := range items {
		out = append(out, toExpenseJSON(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"expenses": out,
		"count":    len(out),
	})
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "Parse JSON body error", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	date, err := parseDate(strings.TrimSpace(req.Date))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid date, expected YYYY-MM-DD")
		return
	}

	cents, err := core.ParseDecimalToCents(strings.TrimSpace(req.Amount))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	desc := sanitizeInput(req.Description)

	// Missing category: classify from the description. An unknown key
	// maps to the catch-all category.
	category := strings.ToLower(strings.TrimSpace(req.Category))
	if category == "" {
		category = insights.Categorize(s.catalog, desc).Category
	} else {
		category = s.catalog.Lookup(category).Key
	}

	exp := core.Expense{
		Date:        date,
		Description: desc,
		Amount:      core.Money{Cents: cents},
		Category:    category,
		Notes:       sanitizeInput(req.Notes),
	}
	if err := exp.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	stored, err := s.service.CreateExpense(r.Context(), exp)
	if err != nil {
		slog.ErrorContext(r.Context(), "Expense create error", "error", err, "description", exp.Description, "amount_cents", exp.Amount.Cents)
		writeError(w, http.StatusInternalServerError, "failed to save expense")
		return
	}

	s.invalidateInsights()
	writeJSON(w, http.StatusCreated, toExpenseJSON(stored))
}

func (s *Server) handleExpenseByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/expenses/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "missing expense id")
		return
	}

	if err := s.service.DeleteExpense(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			writeError(w, http.StatusNotFound, "expense not found")
			return
		}
		slog.ErrorContext(r.Context(), "Expense delete error", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}

	s.invalidateInsights()
	w.WriteHeader(http.StatusNoContent)
}
