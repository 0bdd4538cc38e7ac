// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/swab-vote/handlers"
	"github.com/danielhkuo/swab-vote/metrics"
	"github.com/danielhkuo/swab-vote/middleware"
	"github.com/danielhkuo/swab-vote/voting"
)

// NewRouter registers every API route. gatherer backs /metrics; m may be
// nil, in which case requests are not timed.
func NewRouter(svc *voting.Service, m *metrics.Metrics, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	memberHandler := handlers.NewMemberHandler(svc)
	adminHandler := handlers.NewAdminHandler(svc)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(m.Instrument(pattern, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Member operations
	handle("POST /member", memberHandler.Login)
	handle("PUT /member/logout", memberHandler.Logout)
	handle("GET /member/vote", memberHandler.GetVotingDetails)
	handle("PUT /member/vote/{candidate}", memberHandler.CastVote)
	handle("DELETE /member/vote/withdraw", memberHandler.WithdrawVote)

	// Admin operations
	handle("PUT /admin", adminHandler.Login)
	handle("PUT /admin/logout", adminHandler.Logout)
	handle("GET /admin/tally", adminHandler.Tally)
	handle("PUT /admin/open_voting", adminHandler.OpenVoting)
	handle("PUT /admin/close_voting", adminHandler.CloseVoting)
	handle("GET /admin/audit", adminHandler.AuditLog)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("swab-vote API v1"))
	})

	return mux
}
