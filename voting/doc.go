// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting is the authorization gate in front of the election.

Every operation that takes a token first asks the auth.Authority whether
the token is currently valid for the expected principal kind. Only then is
the election.Store read or changed. A refused token yields ErrUnauthorized
and leaves the store untouched.

# Members

	token, err := svc.MemberLogin(ctx, members.Attempt{Name: "Ada", Number: "1234"})
	ballot, err := svc.CastVote(ctx, token, "curlew")
	err = svc.WithdrawVote(ctx, token)
	err = svc.MemberLogout(ctx, token)

A member token's subject is the membership number, which is the ballot key.

# Admin

	token, err := svc.AdminLogin(ctx, password)
	err = svc.OpenVoting(ctx, token)
	tally, err := svc.Tally(token)

There is one shared admin secret. The subject of an admin token is the
secret presented at login; it is not an identity and is never logged or
audited.

Logins, logouts, votes and voting state changes are written to the
configured audit.Log. Audit failures are logged and do not fail the
operation.
*/
package voting
