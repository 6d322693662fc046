package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"spendlens/internal/core"
	"spendlens/internal/insights"
)

type categoryJSON struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Glyph string `json:"glyph"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	defs := s.catalog.Definitions()
	out := make([]categoryJSON, 0, len(defs))
	for _, d := range defs {
		out = append(out, categoryJSON{Key: d.Key, Label: d.Label, Glyph: d.Glyph})
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

func (s *Server) handleCategorize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "missing q parameter")
		return
	}

	sug := insights.Categorize(s.catalog, q)
	writeJSON(w, http.StatusOK, map[string]any{
		"category":   sug.Category,
		"confidence": string(sug.Confidence),
		"score":      sug.Score,
	})
}

type anomalyJSON struct {
	Expense   expenseJSON `json:"expense"`
	ZScore    float64     `json:"z_score"`
	GroupMean float64     `json:"group_mean"`
}

type forecastJSON struct {
	Predicted      float64 `json:"predicted"`
	Confidence     string  `json:"confidence"`
	MonthsObserved int     `json:"months_observed"`
	Slope          float64 `json:"slope"`
}

type weekdayJSON struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// insightsPayload is the cached analytics response body.
type insightsPayload struct {
	Anomalies []anomalyJSON `json:"anomalies"`
	Forecast  forecastJSON  `json:"forecast"`
	Score     *int          `json:"score"`
	Tips      []string      `json:"tips"`
	Weekdays  []weekdayJSON `json:"weekdays"`
	AsOf      string        `json:"as_of"`
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	asOf := parseAsOf(r, time.Now())
	key := asOf.Format("2006-01-02")

	if payload, found := s.insightsCache.Get(key); found {
		slog.DebugContext(r.Context(), "Insights cache hit", "as_of", key)
		writeJSON(w, http.StatusOK, payload)
		return
	}

	records, err := s.service.ListExpenses(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List expenses error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}
	settings, err := s.settings.LoadSettings(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Load settings error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	payload := s.buildInsights(records, settings.TotalBudget, asOf)
	s.insightsCache.Set(key, payload)
	slog.DebugContext(r.Context(), "Insights cached", "as_of", key, "records", len(records))

	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) buildInsights(records []core.Expense, totalBudget core.Money, asOf time.Time) insightsPayload {
	payload := insightsPayload{
		Anomalies: []anomalyJSON{},
		Tips:      []string{},
		AsOf:      asOf.Format("2006-01-02"),
	}

	for _, a := range insights.DetectAnomalies(records) {
		payload.Anomalies = append(payload.Anomalies, anomalyJSON{
			Expense:   toExpenseJSON(a.Expense),
			ZScore:    a.ZScore,
			GroupMean: a.GroupMean,
		})
	}

	f := insights.ForecastNextMonth(records)
	payload.Forecast = forecastJSON{
		Predicted:      f.Predicted,
		Confidence:     string(f.Confidence),
		MonthsObserved: f.MonthsObserved,
		Slope:          f.Slope,
	}

	if score, ok := insights.HealthScore(records, totalBudget, asOf); ok {
		payload.Score = &score
	}

	if tips := insights.Tips(s.catalog, records, totalBudget, asOf); tips != nil {
		payload.Tips = tips
	}

	buckets := insights.WeekdayPattern(records)
	payload.Weekdays = make([]weekdayJSON, 0, len(buckets))
	for _, b := range buckets {
		payload.Weekdays = append(payload.Weekdays, weekdayJSON{
			Label: b.Label,
			Total: b.Total,
			Count: b.Count,
		})
	}

	return payload
}
