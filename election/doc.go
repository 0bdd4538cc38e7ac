// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election holds the in-memory election state.

A Store owns the fixed candidate slate, one ballot per member, the admin
secret and the open/closed voting flag. Elections start closed.

	store := election.NewStore(adminPassword)
	store.SetOpen()
	err := store.Cast("1234", "curlew")   // stored as "Curlew"
	tally := store.Tally()                // map[Curlew:1 Fulmar:0 Treecreeper:0]

Cast and Withdraw fail with ErrVotingClosed while voting is closed; Cast
fails with ErrUnknownCandidate for names outside the slate. All getters
return values, never references into the store.

The store does not check who is calling. Authorization happens in the
voting package before any of these methods run.
*/
package election
