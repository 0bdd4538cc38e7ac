// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/swab-vote/middleware"
	"github.com/danielhkuo/swab-vote/models"
	"github.com/danielhkuo/swab-vote/voting"
)

type MemberHandler struct {
	svc *voting.Service
}

func NewMemberHandler(svc *voting.Service) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// Login handles POST /member
func (h *MemberHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.MemberLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgMissingDetails)
		return
	}

	token, err := h.svc.MemberLogin(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{
		AuthorisationToken: token,
	})
}

// Logout handles PUT /member/logout
func (h *MemberHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MemberLogout(r.Context(), middleware.GetToken(r)); err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: msgLoggedOut})
}

// GetVotingDetails handles GET /member/vote
func (h *MemberHandler) GetVotingDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.VotingDetails(middleware.GetToken(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VotingDetailsResponse{
		Candidates: details.Candidates,
		Ballot:     details.Ballot,
		VotingOpen: details.Open,
	})
}

// CastVote handles PUT /member/vote/{candidate}
func (h *MemberHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	ballot, err := h.svc.CastVote(r.Context(), middleware.GetToken(r), r.PathValue("candidate"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		Message: msgVoteCast,
		Ballot:  ballot,
	})
}

// WithdrawVote handles DELETE /member/vote/withdraw
func (h *MemberHandler) WithdrawVote(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.WithdrawVote(r.Context(), middleware.GetToken(r)); err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: msgVoteWithdrawn})
}
