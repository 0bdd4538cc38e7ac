// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	reg prometheus.Registerer

	tokensIssued   *prometheus.CounterVec
	tokensRevoked  prometheus.Counter
	authRejections *prometheus.CounterVec
	votesCast      prometheus.Counter
	votesWithdrawn prometheus.Counter
	lookupFailures prometheus.Counter

	requestDuration *prometheus.HistogramVec
}

// New registers all counters with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{reg: reg}

	m.tokensIssued = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swab_tokens_issued_total",
			Help: "tokens issued, by principal kind",
		},
		[]string{"kind"},
	)
	m.tokensRevoked = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "swab_tokens_revoked_total",
			Help: "tokens revoked by logout",
		},
	)
	m.authRejections = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swab_auth_rejections_total",
			Help: "requests refused because the token was not valid for the operation",
		},
		[]string{"kind"},
	)
	m.votesCast = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "swab_votes_cast_total",
			Help: "ballots cast or replaced",
		},
	)
	m.votesWithdrawn = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "swab_votes_withdrawn_total",
			Help: "ballot withdrawals",
		},
	)
	m.lookupFailures = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "swab_member_lookup_failures_total",
			Help: "member logins refused because no matching record was found",
		},
	)
	m.requestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swab_http_request_duration_seconds",
			Help:    "HTTP request latency by route, method and status code",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "code"},
	)
	return m
}

// Instrument records the latency of every request served by next under
// the given route label
func (m *Metrics) Instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	if m == nil {
		return next
	}
	observer := m.requestDuration.MustCurryWith(prometheus.Labels{"route": route})
	return promhttp.InstrumentHandlerDuration(observer, next)
}

// WatchState registers gauges that read the revocation list size and the
// ballot count at scrape time
func (m *Metrics) WatchState(revoked, ballots func() int) {
	if m == nil {
		return
	}
	factory := promauto.With(m.reg)
	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "swab_revoked_tokens",
			Help: "tokens currently held on the revocation list",
		},
		func() float64 { return float64(revoked()) },
	)
	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "swab_ballots",
			Help: "ballots currently held",
		},
		func() float64 { return float64(ballots()) },
	)
}

func (m *Metrics) TokenIssued(kind string) {
	if m == nil {
		return
	}
	m.tokensIssued.WithLabelValues(kind).Inc()
}

func (m *Metrics) TokenRevoked() {
	if m == nil {
		return
	}
	m.tokensRevoked.Inc()
}

func (m *Metrics) AuthRejected(kind string) {
	if m == nil {
		return
	}
	m.authRejections.WithLabelValues(kind).Inc()
}

func (m *Metrics) VoteCast() {
	if m == nil {
		return
	}
	m.votesCast.Inc()
}

func (m *Metrics) VoteWithdrawn() {
	if m == nil {
		return
	}
	m.votesWithdrawn.Inc()
}

func (m *Metrics) LookupFailed() {
	if m == nil {
		return
	}
	m.lookupFailures.Inc()
}
