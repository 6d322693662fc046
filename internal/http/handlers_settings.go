package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"spendlens/internal/core"
)

type settingsJSON struct {
	TotalBudgetCents int64            `json:"total_budget_cents"`
	CategoryBudgets  map[string]int64 `json:"category_budgets"`
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGetSettings(w, r)
	case http.MethodPut:
		s.handlePutSettings(w, r)
	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.LoadSettings(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Load settings error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	out := settingsJSON{
		TotalBudgetCents: settings.TotalBudget.Cents,
		CategoryBudgets:  make(map[string]int64, len(settings.CategoryBudgets)),
	}
	for key, budget := range settings.CategoryBudgets {
		out.CategoryBudgets[key] = budget.Cents
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "Parse JSON body error", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	settings := core.Settings{
		TotalBudget:     core.Money{Cents: req.TotalBudgetCents},
		CategoryBudgets: make(map[string]core.Money, len(req.CategoryBudgets)),
	}
	for key, cents := range req.CategoryBudgets {
		if !s.catalog.Has(key) {
			writeError(w, http.StatusUnprocessableEntity, "unknown category: "+key)
			return
		}
		settings.CategoryBudgets[key] = core.Money{Cents: cents}
	}
	if err := settings.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.settings.SaveSettings(r.Context(), settings); err != nil {
		slog.ErrorContext(r.Context(), "Save settings error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	s.invalidateInsights()
	writeJSON(w, http.StatusOK, req)
}
