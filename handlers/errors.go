// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/swab-vote/auth"
	"github.com/danielhkuo/swab-vote/election"
	"github.com/danielhkuo/swab-vote/members"
	"github.com/danielhkuo/swab-vote/middleware"
	"github.com/danielhkuo/swab-vote/voting"
)

// Messages shown to members and admins
const (
	msgMissingDetails   = "Please enter values for all membership details."
	msgNotFound         = "Sorry, we could not find your details.  Please check that your membership number has been entered correctly."
	msgMismatch         = "Sorry, your details do not match the ones on record.  Please check that you have entered all of your details correctly."
	msgLoginProblem     = "Sorry, there was an unexpected issue logging you in.  Please try again later."
	msgSessionExpired   = "Your session has expired.  Please log in again if you wish to continue."
	msgLoggedOut        = "You have been logged out.  Have a nice day."
	msgMissingPassword  = "Please provide your admin password."
	msgVotingClosed     = "Voting is currently closed."
	msgUnknownCandidate = "That candidate is not standing in this election."
	msgVoteCast         = "Vote cast successfully!"
	msgVoteWithdrawn    = "Vote withdrawn successfully!"
	msgVotingOpened     = "Voting is now allowed."
	msgVotingClosedNow  = "Voting is now closed."
)

// writeServiceError maps a voting service error to a status code and a
// user-facing message
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, voting.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusUnauthorized, msgSessionExpired)
	case errors.Is(err, election.ErrVotingClosed):
		middleware.ErrorResponse(w, http.StatusUnavailableForLegalReasons, msgVotingClosed)
	case errors.Is(err, election.ErrUnknownCandidate):
		middleware.ErrorResponse(w, http.StatusNotFound, msgUnknownCandidate)
	case errors.Is(err, members.ErrMissingDetails):
		middleware.ErrorResponse(w, http.StatusBadRequest, msgMissingDetails)
	case errors.Is(err, members.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, members.ErrMismatch), errors.Is(err, voting.ErrBadPassword):
		middleware.ErrorResponse(w, http.StatusUnauthorized, msgMismatch)
	case errors.Is(err, voting.ErrMissingPassword):
		middleware.ErrorResponse(w, http.StatusBadRequest, msgMissingPassword)
	case errors.Is(err, auth.ErrSigningFailed):
		slog.Error("token signing failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgLoginProblem)
	default:
		slog.Error("unexpected service error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
