package http

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseAsOf(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		url  string
		want time.Time
	}{
		{"no params", "/api/insights", now},
		{"current month", "/api/insights?year=2026&month=8", now},
		{"past month", "/api/insights?year=2026&month=2", time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"december", "/api/insights?year=2025&month=12", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"month out of range", "/api/insights?year=2026&month=13", now},
		{"garbage", "/api/insights?year=abc&month=xyz", now},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			got := parseAsOf(r, now)
			if !got.Equal(tc.want) {
				t.Fatalf("parseAsOf = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  coffee  ", "coffee"},
		{"line\x00break", "linebreak"},
		{"tab\tkept", "tab\tkept"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := sanitizeInput(tc.in); got != tc.want {
			t.Fatalf("sanitizeInput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
