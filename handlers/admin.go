// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/swab-vote/middleware"
	"github.com/danielhkuo/swab-vote/models"
	"github.com/danielhkuo/swab-vote/voting"
)

type AdminHandler struct {
	svc *voting.Service
}

func NewAdminHandler(svc *voting.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Login handles PUT /admin
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgMissingPassword)
		return
	}

	token, err := h.svc.AdminLogin(r.Context(), req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{
		AuthorisationToken: token,
	})
}

// Logout handles PUT /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.AdminLogout(r.Context(), middleware.GetToken(r)); err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: msgLoggedOut})
}

// Tally handles GET /admin/tally
func (h *AdminHandler) Tally(w http.ResponseWriter, r *http.Request) {
	tally, err := h.svc.Tally(middleware.GetToken(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	total := 0
	for _, n := range tally {
		total += n
	}

	middleware.JSONResponse(w, http.StatusOK, models.TallyResponse{
		Tally: tally,
		Total: total,
	})
}

// OpenVoting handles PUT /admin/open_voting
func (h *AdminHandler) OpenVoting(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.OpenVoting(r.Context(), middleware.GetToken(r)); err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VotingStateResponse{
		Message:    msgVotingOpened,
		VotingOpen: true,
	})
}

// CloseVoting handles PUT /admin/close_voting
func (h *AdminHandler) CloseVoting(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.CloseVoting(r.Context(), middleware.GetToken(r)); err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VotingStateResponse{
		Message:    msgVotingClosedNow,
		VotingOpen: false,
	})
}

// AuditLog handles GET /admin/audit?limit=N
func (h *AdminHandler) AuditLog(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	events, err := h.svc.AuditLog(r.Context(), middleware.GetToken(r), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AuditLogResponse{Events: events})
}
