// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// BearerPrefix is prepended to tokens carried in HTTP headers
const BearerPrefix = "Bearer "

// GenerateSigningKey creates a random HMAC key of the specified byte length
func GenerateSigningKey(byteLen int) ([]byte, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	return b, nil
}

// SecretsMatch compares a presented secret against the expected one in
// constant time. Both sides are hashed first so the comparison does not
// leak the expected length.
func SecretsMatch(presented, expected string) bool {
	p := sha256.Sum256([]byte(presented))
	e := sha256.Sum256([]byte(expected))
	return hmac.Equal(p[:], e[:])
}

// BearerToken extracts the raw token from an Authorization header value.
// Values without the prefix are returned trimmed but otherwise untouched.
func BearerToken(header string) string {
	header = strings.TrimLeft(header, " \t")
	if len(header) >= len(BearerPrefix) && strings.EqualFold(header[:len(BearerPrefix)], BearerPrefix) {
		header = header[len(BearerPrefix):]
	}
	return strings.TrimSpace(header)
}

// Fingerprint creates a short one-way digest of a token for log correlation.
// Raw tokens are never logged.
func Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	// First 8 bytes (16 hex chars) are plenty to tell tokens apart in logs
	return hex.EncodeToString(sum[:8])
}
