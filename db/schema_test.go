// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"
	"time"
)

func TestOpenUnsupportedType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn, err := Open(TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema() call %d error = %v", i+1, err)
		}
	}

	_, err = conn.Exec(`
		INSERT INTO audit_event (id, kind, subject, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, "evt-1", "vote_cast", "1234", "Curlew", time.Now())
	if err != nil {
		t.Fatalf("Failed to insert audit event: %v", err)
	}

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM audit_event").Scan(&count); err != nil {
		t.Fatalf("Failed to count audit events: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 audit event, got %d", count)
	}
}
