// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/swab-vote/audit"
	"github.com/danielhkuo/swab-vote/auth"
	"github.com/danielhkuo/swab-vote/election"
	"github.com/danielhkuo/swab-vote/members"
	"github.com/danielhkuo/swab-vote/metrics"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrMissingPassword = errors.New("admin password is required")
	ErrBadPassword     = errors.New("admin password is incorrect")
)

// DefaultAuditLimit is how many audit events AuditLog returns when the
// caller asks for none or a negative number
const DefaultAuditLimit = 100

// Details is what a member sees on the voting page
type Details struct {
	Candidates []election.Candidate
	Ballot     election.Ballot
	Open       bool
}

// Service checks every token against the Authority before it touches the
// Store. Nothing is mutated unless authorization already succeeded.
type Service struct {
	authority *auth.Authority
	store     *election.Store
	verifier  members.Verifier
	audit     audit.Log
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

type Option func(*Service)

func WithAudit(log audit.Log) Option {
	return func(s *Service) {
		if log != nil {
			s.audit = log
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(authority *auth.Authority, store *election.Store, verifier members.Verifier, opts ...Option) *Service {
	s := &Service{
		authority: authority,
		store:     store,
		verifier:  verifier,
		audit:     audit.Nop{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MemberLogin verifies the attempt against member records and issues a
// member token keyed by the membership number
func (s *Service) MemberLogin(ctx context.Context, attempt members.Attempt) (string, error) {
	if err := s.verifier.Verify(ctx, attempt); err != nil {
		if !errors.Is(err, members.ErrMissingDetails) {
			s.metrics.LookupFailed()
		}
		s.logger.Info("member login refused", "member_number", attempt.Number, "error", err)
		s.record(ctx, audit.KindMemberLoginFailed, attempt.Number, err.Error())
		return "", err
	}

	token, err := s.authority.IssueMemberToken(attempt.Number)
	if err != nil {
		return "", err
	}

	s.metrics.TokenIssued(string(auth.KindMember))
	s.logger.Info("member logged in", "member_number", attempt.Number)
	s.record(ctx, audit.KindMemberLogin, attempt.Number, "")
	return token, nil
}

func (s *Service) MemberLogout(ctx context.Context, token string) error {
	member, err := s.member(token)
	if err != nil {
		return err
	}
	// A concurrent logout of the same token may have won since the check
	if !s.authority.Revoke(token) {
		return ErrUnauthorized
	}
	s.metrics.TokenRevoked()
	s.logger.Info("member logged out", "member_number", member)
	s.record(ctx, audit.KindMemberLogout, member, "")
	return nil
}

func (s *Service) Candidates(token string) ([]election.Candidate, error) {
	if _, err := s.member(token); err != nil {
		return nil, err
	}
	return s.store.Candidates(), nil
}

func (s *Service) Ballot(token string) (election.Ballot, error) {
	member, err := s.member(token)
	if err != nil {
		return election.Ballot{}, err
	}
	return s.store.CurrentBallot(member), nil
}

// VotingDetails returns the candidate list, the caller's ballot and whether
// voting is open
func (s *Service) VotingDetails(token string) (Details, error) {
	member, err := s.member(token)
	if err != nil {
		return Details{}, err
	}
	return Details{
		Candidates: s.store.Candidates(),
		Ballot:     s.store.CurrentBallot(member),
		Open:       s.store.IsOpen(),
	}, nil
}

// CastVote replaces the caller's ballot and returns the stored ballot
func (s *Service) CastVote(ctx context.Context, token, candidate string) (election.Ballot, error) {
	member, err := s.member(token)
	if err != nil {
		return election.Ballot{}, err
	}
	if err := s.store.Cast(member, candidate); err != nil {
		s.logger.Info("vote refused", "member_number", member, "candidate", candidate, "error", err)
		return election.Ballot{}, fmt.Errorf("failed to cast vote: %w", err)
	}

	ballot := s.store.CurrentBallot(member)
	s.metrics.VoteCast()
	s.logger.Info("vote cast", "member_number", member, "candidate", ballot.Candidate)
	s.record(ctx, audit.KindVoteCast, member, ballot.Candidate)
	return ballot, nil
}

func (s *Service) WithdrawVote(ctx context.Context, token string) error {
	member, err := s.member(token)
	if err != nil {
		return err
	}
	if err := s.store.Withdraw(member); err != nil {
		s.logger.Info("withdrawal refused", "member_number", member, "error", err)
		return fmt.Errorf("failed to withdraw vote: %w", err)
	}

	s.metrics.VoteWithdrawn()
	s.logger.Info("vote withdrawn", "member_number", member)
	s.record(ctx, audit.KindVoteWithdrawn, member, "")
	return nil
}

// AdminLogin checks the shared admin secret and issues an admin token.
// The token's subject is the presented secret, so it is never logged.
func (s *Service) AdminLogin(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrMissingPassword
	}
	if !s.store.CheckAdminPassword(password) {
		s.logger.Warn("admin login refused")
		s.record(ctx, audit.KindAdminLoginFailed, "", "")
		return "", ErrBadPassword
	}

	token, err := s.authority.IssueAdminToken(password)
	if err != nil {
		return "", err
	}

	s.metrics.TokenIssued(string(auth.KindAdmin))
	s.logger.Info("admin logged in")
	s.record(ctx, audit.KindAdminLogin, "", "")
	return token, nil
}

func (s *Service) AdminLogout(ctx context.Context, token string) error {
	if err := s.admin(token); err != nil {
		return err
	}
	// A concurrent logout of the same token may have won since the check
	if !s.authority.Revoke(token) {
		return ErrUnauthorized
	}
	s.metrics.TokenRevoked()
	s.logger.Info("admin logged out")
	s.record(ctx, audit.KindAdminLogout, "", "")
	return nil
}

func (s *Service) Tally(token string) (map[string]int, error) {
	if err := s.admin(token); err != nil {
		return nil, err
	}
	return s.store.Tally(), nil
}

func (s *Service) OpenVoting(ctx context.Context, token string) error {
	if err := s.admin(token); err != nil {
		return err
	}
	s.store.SetOpen()
	s.logger.Info("voting opened")
	s.record(ctx, audit.KindVotingOpened, "", "")
	return nil
}

func (s *Service) CloseVoting(ctx context.Context, token string) error {
	if err := s.admin(token); err != nil {
		return err
	}
	s.store.SetClosed()
	s.logger.Info("voting closed")
	s.record(ctx, audit.KindVotingClosed, "", "")
	return nil
}

// AuditLog returns the newest audit events, newest first
func (s *Service) AuditLog(ctx context.Context, token string, limit int) ([]audit.Event, error) {
	if err := s.admin(token); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	events, err := s.audit.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}
	return events, nil
}

// member authorizes a member token and returns the membership number
func (s *Service) member(token string) (string, error) {
	if !s.authority.IsValid(token, auth.KindMember) {
		s.metrics.AuthRejected(string(auth.KindMember))
		return "", ErrUnauthorized
	}
	return s.authority.SubjectOf(token), nil
}

func (s *Service) admin(token string) error {
	if !s.authority.IsValid(token, auth.KindAdmin) {
		s.metrics.AuthRejected(string(auth.KindAdmin))
		return ErrUnauthorized
	}
	return nil
}

// record writes an audit event. Failures are logged and otherwise ignored.
func (s *Service) record(ctx context.Context, kind, subject, detail string) {
	err := s.audit.Record(ctx, audit.Event{Kind: kind, Subject: subject, Detail: detail})
	if err != nil {
		s.logger.Warn("audit event dropped", "kind", kind, "error", err)
	}
}
