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

func (h *Handler) startFast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	var req models.StartFastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	fast, err := h.services.FastService.StartFast(ctx, principal.User.UserID, req.TargetHours)
	if err != nil {
		log.Err(err).Msg("fast start failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, fast, http.StatusCreated)
}

func (h *Handler) currentFast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	fast, err := h.services.FastService.CurrentFast(ctx, principal.User.UserID)
	if err != nil {
		log.Debug().Err(err).Msg("open fast lookup failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, fast, http.StatusOK)
}

func (h *Handler) finishFast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.services.FastService.FinishFast(ctx, principal.User.UserID, id); err != nil {
		log.Err(err).Str("fast_id", id).Msg("fast completion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFasts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	fasts, err := h.services.FastService.ListFasts(ctx, principal.User.UserID)
	if err != nil {
		log.Err(err).Msg("fast listing failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, fasts, http.StatusOK)
}

func (h *Handler) deleteFast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.services.FastService.DeleteFast(ctx, principal.User.UserID, id); err != nil {
		log.Err(err).Str("fast_id", id).Msg("fast deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
