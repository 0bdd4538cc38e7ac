// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package audit records security-relevant events: logins (successful and
failed), logouts, votes cast and withdrawn, and voting opened or closed.

	log := audit.NewSQLRecorder(conn, logger)
	err := log.Record(ctx, audit.Event{Kind: audit.KindVoteCast, Subject: "1234", Detail: "Curlew"})
	events, err := log.Recent(ctx, 50)

Nop is used when no database is configured. Callers treat recording
failures as non-fatal.
*/
package audit
