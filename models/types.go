package models

import (
	"github.com/danielhkuo/swab-vote/audit"
	"github.com/danielhkuo/swab-vote/election"
	"github.com/danielhkuo/swab-vote/members"
)

// Request types

// MemberLoginRequest carries the details checked against member records
type MemberLoginRequest = members.Attempt

type AdminLoginRequest struct {
	Password string `json:"admin_pass"`
}

// Response types

type TokenResponse struct {
	AuthorisationToken string `json:"authorisation_token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type VotingDetailsResponse struct {
	Candidates []election.Candidate `json:"candidates"`
	Ballot     election.Ballot      `json:"ballot"`
	VotingOpen bool                 `json:"voting_open"`
}

type CastVoteResponse struct {
	Message string          `json:"message"`
	Ballot  election.Ballot `json:"ballot"`
}

// Tally maps candidate common name to votes held
type TallyResponse struct {
	Tally map[string]int `json:"tally"`
	Total int            `json:"total"`
}

type VotingStateResponse struct {
	Message    string `json:"message"`
	VotingOpen bool   `json:"voting_open"`
}

type AuditLogResponse struct {
	Events []audit.Event `json:"events"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
