// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the SWAB voting API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	reg := prometheus.NewRegistry()
	mux := router.NewRouter(svc, metrics.New(reg), reg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Member (POST /member returns the token the others need):

	POST   /member                  - Log in with membership details
	PUT    /member/logout           - Revoke the token
	GET    /member/vote             - Candidates, own ballot, voting open flag
	PUT    /member/vote/{candidate} - Cast or replace ballot
	DELETE /member/vote/withdraw    - Withdraw ballot

Admin (PUT /admin returns the token the others need):

	PUT /admin              - Log in with the admin password
	PUT /admin/logout       - Revoke the token
	GET /admin/tally        - Votes per candidate
	PUT /admin/open_voting  - Allow voting
	PUT /admin/close_voting - Stop voting
	GET /admin/audit        - Recent audit events

Every API route is wrapped with request logging and a latency histogram
labelled by route pattern.
*/
package router
