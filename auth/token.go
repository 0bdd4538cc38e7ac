// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind is the principal kind a token was issued for
type Kind string

const (
	KindMember Kind = "member"
	KindAdmin  Kind = "admin"
)

// Issuer is stamped into every token and required on verification
const Issuer = "SWAB_VOTING_SYSTEM"

// DefaultLifespan is used when no positive lifespan is configured
const DefaultLifespan = 30 * time.Second

var ErrSigningFailed = errors.New("token signing failed")

type tokenClaims struct {
	Kind Kind `json:"kind"`
	// Unix milliseconds; the registered iat claim only has second precision
	IssueTime int64 `json:"issue_time"`
	jwt.RegisteredClaims
}

// Authority issues, verifies and revokes bearer tokens.
// The revocation list is guarded by its own mutex.
type Authority struct {
	key      []byte
	lifespan time.Duration
	now      func() time.Time
	logger   *slog.Logger
	parser   *jwt.Parser

	mu sync.Mutex
	// token -> issue time in unix millis (0 if the token never decoded)
	revoked map[string]int64
}

type Option func(*Authority)

// WithClock overrides the wall clock used for issuing and checking tokens
func WithClock(now func() time.Time) Option {
	return func(a *Authority) {
		if now != nil {
			a.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *Authority) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func NewAuthority(key []byte, lifespan time.Duration, opts ...Option) *Authority {
	if lifespan <= 0 {
		lifespan = DefaultLifespan
	}
	a := &Authority{
		key:      key,
		lifespan: lifespan,
		now:      time.Now,
		logger:   slog.Default(),
		revoked:  make(map[string]int64),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(a.now),
	)
	return a
}

// Lifespan returns the configured token lifespan
func (a *Authority) Lifespan() time.Duration {
	return a.lifespan
}

// IssueMemberToken signs a token whose subject is the member number
func (a *Authority) IssueMemberToken(memberNumber string) (string, error) {
	return a.issue(KindMember, memberNumber)
}

// IssueAdminToken signs an admin token. The subject is the secret presented
// at login; it is not an identity.
func (a *Authority) IssueAdminToken(adminSecret string) (string, error) {
	return a.issue(KindAdmin, adminSecret)
}

func (a *Authority) issue(kind Kind, subject string) (string, error) {
	a.mu.Lock()
	a.tidyLocked()
	a.mu.Unlock()

	if len(a.key) == 0 {
		a.logger.Error("token signing failed", "kind", kind, "error", "empty signing key")
		return "", fmt.Errorf("%w: empty signing key", ErrSigningFailed)
	}

	now := a.now()
	claims := tokenClaims{
		Kind:      kind,
		IssueTime: now.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   Issuer,
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
			// Two logins in the same millisecond must still get distinct tokens,
			// otherwise revoking one would revoke both
			ID: uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
	if err != nil {
		a.logger.Error("token signing failed", "kind", kind, "error", err)
		return "", fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}
	return token, nil
}

// Revoke adds a token to the revocation list. It reports false when the
// token was already revoked, so concurrent logouts settle on one winner.
func (a *Authority) Revoke(token string) bool {
	var issued int64
	if claims, err := a.decode(token); err == nil {
		issued = claims.IssueTime
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.tidyLocked()
	if _, ok := a.revoked[token]; ok {
		return false
	}
	a.revoked[token] = issued

	a.logger.Debug("token revoked", "token", Fingerprint(token), "revoked", len(a.revoked))
	return true
}

// IsValid reports whether the token is currently acceptable for kind.
// Checks run cheapest first: revocation list, signature and claims, then
// the time window.
func (a *Authority) IsValid(token string, kind Kind) bool {
	a.mu.Lock()
	a.tidyLocked()
	_, revoked := a.revoked[token]
	a.mu.Unlock()

	if revoked {
		a.logger.Debug("token rejected", "reason", "revoked", "token", Fingerprint(token))
		return false
	}

	claims, err := a.decode(token)
	if err != nil {
		a.logger.Debug("token rejected", "reason", "verification", "error", err)
		return false
	}
	if claims.Kind != kind {
		a.logger.Debug("token rejected", "reason", "kind", "want", kind, "got", claims.Kind)
		return false
	}
	if !a.withinWindow(claims.IssueTime) {
		a.logger.Debug("token rejected", "reason", "expired", "token", Fingerprint(token))
		return false
	}
	return true
}

// SubjectOf returns the subject embedded in a token, or "" if it does not
// decode. Only meaningful after IsValid has accepted the token.
func (a *Authority) SubjectOf(token string) string {
	claims, err := a.decode(token)
	if err != nil {
		return ""
	}
	return claims.Subject
}

// RevokedCount returns the size of the revocation list after pruning
func (a *Authority) RevokedCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tidyLocked()
	return len(a.revoked)
}

func (a *Authority) decode(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, err := a.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.key, nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// withinWindow checks issue <= now <= issue+lifespan. Issue times further
// back than twice the lifespan are rejected outright, and so are issue
// times in the future, which only happen after the clock was wound back.
func (a *Authority) withinWindow(issueMillis int64) bool {
	now := a.now().UnixMilli()
	life := a.lifespan.Milliseconds()

	if issueMillis > now {
		return false
	}
	if now > issueMillis+life {
		return false
	}
	if issueMillis < now-2*life {
		return false
	}
	return true
}

// tidyLocked drops revoked tokens that have aged out on their own.
// Caller must hold a.mu.
func (a *Authority) tidyLocked() {
	for token, issued := range a.revoked {
		if issued == 0 || !a.withinWindow(issued) {
			delete(a.revoked, token)
		}
	}
}
