// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package audit

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Event kinds
const (
	KindMemberLogin       = "member_login"
	KindMemberLoginFailed = "member_login_failed"
	KindMemberLogout      = "member_logout"
	KindAdminLogin        = "admin_login"
	KindAdminLoginFailed  = "admin_login_failed"
	KindAdminLogout       = "admin_logout"
	KindVoteCast          = "vote_cast"
	KindVoteWithdrawn     = "vote_withdrawn"
	KindVotingOpened      = "voting_opened"
	KindVotingClosed      = "voting_closed"
)

// Event is a single audit record. Subject is a member number or empty;
// admin secrets are never recorded.
type Event struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Subject   string    `json:"subject,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Log stores audit events and reads back the most recent ones
type Log interface {
	Record(ctx context.Context, event Event) error
	Recent(ctx context.Context, limit int) ([]Event, error)
}

// Nop discards every event. Used when no audit database is configured.
type Nop struct{}

func (Nop) Record(context.Context, Event) error { return nil }

func (Nop) Recent(context.Context, int) ([]Event, error) { return []Event{}, nil }

// SQLRecorder writes events to the audit_event table
type SQLRecorder struct {
	db     *sql.DB
	now    func() time.Time
	logger *slog.Logger
}

func NewSQLRecorder(db *sql.DB, logger *slog.Logger) *SQLRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLRecorder{db: db, now: time.Now, logger: logger}
}

// Record inserts the event, filling in ID and CreatedAt when unset
func (r *SQLRecorder) Record(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = r.now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_event (id, kind, subject, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, event.ID, event.Kind, event.Subject, event.Detail, event.CreatedAt.UTC())
	if err != nil {
		r.logger.Error("failed to insert audit event", "error", err, "kind", event.Kind)
		return fmt.Errorf("failed to record audit event: %w", err)
	}
	return nil
}

// Recent returns the newest events first, at most limit of them
func (r *SQLRecorder) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, subject, detail, created_at
		FROM audit_event
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Kind, &e.Subject, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit events: %w", err)
	}
	return events, nil
}
