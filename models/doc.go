// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - MemberLoginRequest: user_name, user_number, user_age, user_region
  - AdminLoginRequest: admin_pass

# Response Types

Types for JSON responses:

  - TokenResponse: authorisation_token
  - MessageResponse: message
  - VotingDetailsResponse: candidates, ballot, voting_open
  - CastVoteResponse: message, ballot
  - TallyResponse: tally, total
  - VotingStateResponse: message, voting_open
  - AuditLogResponse: events
  - ErrorResponse: error, message

Domain types (candidates, ballots) live in package election; these types
only shape them for the wire.
*/
package models
