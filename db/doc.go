// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the audit database and creates its schema.

# Connecting

	conn, err := db.Open(db.TypeSQLite, "file:audit.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite (modernc.org/sqlite, pure Go) is the default; PostgreSQL uses
lib/pq. SQLite connections are limited to a single open connection.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - audit_event: append-only log of logins, logouts, votes and voting
    state changes

Indexes on audit_event.kind and audit_event.created_at.

The audit table is written, never read back into election state. Ballots,
tokens and the voting flag live in memory only.
*/
package db
