package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/service"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

// Back-office endpoints. All of them sit behind the session and admin gates,
// so a principal is always present and already verified as admin.

func (h *Handler) adminListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AdminService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) adminCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AdminCreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	created, err := h.services.AdminService.CreateUser(ctx, req.Email, req.Password, req.Role)
	if err != nil {
		log.Err(err).Msg("admin user creation failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) adminUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	var req models.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	targetID := chi.URLParam(r, "id")
	if err := h.services.AdminService.UpdateUserRole(ctx, principal.User.UserID, targetID, req.Role); err != nil {
		log.Err(err).Str("target_id", targetID).Msg("role update failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminResetUserPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	targetID := chi.URLParam(r, "id")
	if err := h.services.AdminService.ResetUserPassword(ctx, targetID, req.Password); err != nil {
		log.Err(err).Str("target_id", targetID).Msg("password reset failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	targetID := chi.URLParam(r, "id")
	if err := h.services.AdminService.DeleteUser(ctx, principal.User.UserID, targetID); err != nil {
		log.Err(err).Str("target_id", targetID).Msg("user deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
