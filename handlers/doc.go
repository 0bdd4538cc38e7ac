// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the SWAB voting API.

# Handler Types

Each handler is a struct over the voting service:

  - MemberHandler: member login, logout, voting details, cast and withdraw
  - AdminHandler: admin login, logout, tally, open and close voting, audit log

	memberHandler := handlers.NewMemberHandler(svc)

# Member Flow

	POST   /member                 → Login (returns authorisation_token)
	GET    /member/vote            → GetVotingDetails
	PUT    /member/vote/{candidate} → CastVote (case-insensitive name)
	DELETE /member/vote/withdraw   → WithdrawVote
	PUT    /member/logout          → Logout

# Admin Flow

	PUT /admin              → Login (body {"admin_pass": ...})
	PUT /admin/open_voting  → OpenVoting
	GET /admin/tally        → Tally
	PUT /admin/close_voting → CloseVoting
	GET /admin/audit        → AuditLog
	PUT /admin/logout       → Logout

Every route except the two logins needs "Authorization: Bearer <token>".

# Status Codes

	400 missing login details or admin password
	401 bad, expired, revoked or wrong-kind token; details or password mismatch
	404 member record not found (or the record service is down); unknown candidate
	451 vote changed while voting is closed
	500 token signing failed
*/
package handlers
