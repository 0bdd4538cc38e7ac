// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the SWAB voting API server.

Members of the society log in with their membership details, which are
checked against the external member record service, and cast one vote
each for the bird of the year. An admin opens and closes voting and reads
the tally. All election state is held in memory.

# Starting the Server

	ADMIN_PASSWORD=... SIGNING_KEY=... go run .

Or with flags:

	go run . -p 8443 -admin-password ... -signing-key ...

A .env file in the working directory is loaded first, if present.

# Configuration

Required settings:

  - ADMIN_PASSWORD (-admin-password): Shared admin secret

Optional settings:

  - SIGNING_KEY (-signing-key): Token HMAC key (generated per process if unset)
  - PORT (-p): Server port (default: 8443)
  - MEMBERS_URL (-members-url): Member record service base URL
  - LOOKUP_TIMEOUT (-lookup-timeout): Member lookup bound (default: 5s)
  - TOKEN_LIFESPAN (-token-lifespan): Token validity (default: 30s)
  - DATABASE_URL (-d), DATABASE_TYPE (-t): Audit database
  - ALLOWED_ORIGIN (-origin): CORS origin

# Architecture

  - auth: Token authority (issue, verify, revoke) and secret helpers
  - election: Candidates, ballots and the voting open flag
  - members: Member record lookup and login detail matching
  - voting: Authorization gate composing the above
  - audit: Audit event log
  - metrics: Prometheus collectors
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Audit database connection and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
