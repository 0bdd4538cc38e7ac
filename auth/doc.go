// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the token authority and secret-handling utilities.

# Tokens

Tokens are HS256 JWTs issued for one of two principal kinds:

	authority := auth.NewAuthority(key, 30*time.Second)
	token, err := authority.IssueMemberToken("1234")
	ok := authority.IsValid(token, auth.KindMember)

Each token carries its kind, a subject (the member number, or for admins
the secret presented at login), an issue time in milliseconds, the issuer
tag and a random ID. A member token is never accepted where an admin token
is expected and vice versa.

A token is valid from its issue time until issue time plus the lifespan.
Tokens dated in the future, or more than two lifespans in the past, are
always rejected.

# Revocation

Logout revokes a token:

	authority.Revoke(token)

Revoked tokens are kept in memory only until they would have expired
anyway. Pruning runs at the start of every issue, revoke and check, so the
list never holds more than the tokens revoked within one lifespan.

# Secrets

SecretsMatch compares secrets in constant time. GenerateSigningKey creates
a random key for development runs without a configured key.

# Headers

	raw := auth.BearerToken(r.Header.Get("Authorization"))

Fingerprint gives a short digest of a token for logs.
*/
package auth
