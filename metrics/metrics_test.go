// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// gather returns metric values keyed by "name" or "name{label}"
func gather(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	values := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "{" + lp.GetValue() + "}"
			}
			switch {
			case m.GetCounter() != nil:
				values[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[key] = m.GetGauge().GetValue()
			}
		}
	}
	return values
}

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.TokenIssued("member")
	m.TokenIssued("member")
	m.TokenIssued("admin")
	m.TokenRevoked()
	m.AuthRejected("admin")
	m.VoteCast()
	m.VoteCast()
	m.VoteWithdrawn()
	m.LookupFailed()

	values := gather(t, reg)

	tests := []struct {
		key  string
		want float64
	}{
		{"swab_tokens_issued_total{member}", 2},
		{"swab_tokens_issued_total{admin}", 1},
		{"swab_tokens_revoked_total", 1},
		{"swab_auth_rejections_total{admin}", 1},
		{"swab_votes_cast_total", 2},
		{"swab_votes_withdrawn_total", 1},
		{"swab_member_lookup_failures_total", 1},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := values[tt.key]; got != tt.want {
				t.Errorf("%s = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestWatchState(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	revoked, ballots := 3, 7
	m.WatchState(func() int { return revoked }, func() int { return ballots })

	values := gather(t, reg)
	if values["swab_revoked_tokens"] != 3 {
		t.Errorf("swab_revoked_tokens = %v, want 3", values["swab_revoked_tokens"])
	}
	if values["swab_ballots"] != 7 {
		t.Errorf("swab_ballots = %v, want 7", values["swab_ballots"])
	}

	// Gauges are read at scrape time
	ballots = 8
	values = gather(t, reg)
	if values["swab_ballots"] != 8 {
		t.Errorf("swab_ballots = %v, want 8", values["swab_ballots"])
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	// None of these may panic
	m.TokenIssued("member")
	m.TokenRevoked()
	m.AuthRejected("member")
	m.VoteCast()
	m.VoteWithdrawn()
	m.LookupFailed()
	m.WatchState(func() int { return 0 }, func() int { return 0 })
}

func TestInstrument(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	handler := m.Instrument("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusTeapot {
		t.Fatalf("Expected status 418, got %d", w.Code)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	var count uint64
	for _, mf := range families {
		if mf.GetName() != "swab_http_request_duration_seconds" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := make(map[string]string)
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["route"] != "GET /health" || labels["code"] != "418" || labels["method"] != "get" {
				t.Errorf("unexpected labels %v", labels)
			}
			count += metric.GetHistogram().GetSampleCount()
		}
	}
	if count != 1 {
		t.Errorf("Expected 1 observation, got %d", count)
	}

	// A nil Metrics passes the handler through untouched
	var none *Metrics
	if none.Instrument("GET /", handler) == nil {
		t.Error("Expected handler back from nil Metrics")
	}
}
