package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/service"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

func (h *Handler) createWaterEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	var req models.CreateWaterEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	entry := models.WaterEntry{VolumeML: req.VolumeML}
	if req.DrunkAt != "" {
		drunkAt, err := time.Parse(time.RFC3339, req.DrunkAt)
		if err != nil {
			log.Err(err).Msg("unparsable drunk_at timestamp")
			writeError(w, service.ErrInvalidDataProvided)
			return
		}
		entry.DrunkAt = drunkAt
	}

	created, err := h.services.WaterService.CreateWaterEntry(ctx, principal.User.UserID, entry)
	if err != nil {
		log.Err(err).Msg("water entry creation failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listWaterEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	from, to, err := waterRangeFromQuery(r)
	if err != nil {
		log.Err(err).Msg("unparsable date range")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	entries, err := h.services.WaterService.ListWaterEntries(ctx, principal.User.UserID, from, to)
	if err != nil {
		log.Err(err).Msg("water entry listing failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) waterTotal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	from, to, err := waterRangeFromQuery(r)
	if err != nil {
		log.Err(err).Msg("unparsable date range")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	total, err := h.services.WaterService.WaterTotal(ctx, principal.User.UserID, from, to)
	if err != nil {
		log.Err(err).Msg("water total computation failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.WaterTotalResponse{VolumeML: total}, http.StatusOK)
}

func (h *Handler) deleteWaterEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.services.WaterService.DeleteWaterEntry(ctx, principal.User.UserID, id); err != nil {
		log.Err(err).Str("water_entry_id", id).Msg("water entry deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// waterRangeFromQuery parses the from/to query parameters, defaulting to the
// current UTC day when both are absent.
func waterRangeFromQuery(r *http.Request) (time.Time, time.Time, error) {
	rawFrom := r.URL.Query().Get("from")
	rawTo := r.URL.Query().Get("to")

	if rawFrom == "" && rawTo == "" {
		now := time.Now().UTC()
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return dayStart, dayStart.Add(24 * time.Hour), nil
	}

	from, err := time.Parse(time.RFC3339, rawFrom)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(time.RFC3339, rawTo)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return from, to, nil
}
