// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8443)
  - MembersURL: Member record service base URL (default: DefaultMembersURL)
  - LookupTimeout: Bound on a single member lookup (default: 5s)
  - TokenLifespan: How long an issued token stays valid (default: 30s)
  - SigningKey: HMAC key for tokens (optional, generated per process when empty)
  - AdminPassword: Shared admin secret (required)
  - DatabaseURL: Audit database (optional, auditing disabled when empty)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AllowedOrigin: CORS origin (default: *)

# CLI Flags

	-p               Server port
	-members-url     Member record service base URL
	-lookup-timeout  Member lookup timeout
	-token-lifespan  Token lifespan
	-signing-key     Token signing key
	-admin-password  Admin password
	-d               Audit database URL
	-t               Database type
	-origin          Allowed CORS origin

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	MEMBERS_URL    → -members-url
	LOOKUP_TIMEOUT → -lookup-timeout
	TOKEN_LIFESPAN → -token-lifespan
	SIGNING_KEY    → -signing-key
	ADMIN_PASSWORD → -admin-password
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ALLOWED_ORIGIN → -origin

CLI flags take precedence over environment variables. Durations use
time.ParseDuration syntax ("30s", "2m").

# Validation

ParseFlags returns an error if:

  - ADMIN_PASSWORD is missing
  - PORT is not a number
  - a duration does not parse or is not positive
  - the database type is neither sqlite nor postgres
*/
package cliparse
