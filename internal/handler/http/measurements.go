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

func (h *Handler) createMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	var req models.CreateMeasurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	measurement := models.Measurement{
		WeightKG:   req.WeightKG,
		BodyFatPct: req.BodyFatPct,
		WaistCM:    req.WaistCM,
		Note:       req.Note,
	}
	if req.RecordedAt != "" {
		recordedAt, err := time.Parse(time.RFC3339, req.RecordedAt)
		if err != nil {
			log.Err(err).Msg("unparsable recorded_at timestamp")
			writeError(w, service.ErrInvalidDataProvided)
			return
		}
		measurement.RecordedAt = recordedAt
	}

	created, err := h.services.MeasurementService.CreateMeasurement(ctx, principal.User.UserID, measurement)
	if err != nil {
		log.Err(err).Msg("measurement creation failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	filter, err := measurementFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("unparsable date filter")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	measurements, err := h.services.MeasurementService.ListMeasurements(ctx, principal.User.UserID, filter)
	if err != nil {
		log.Err(err).Msg("measurement listing failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, measurements, http.StatusOK)
}

func (h *Handler) getMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	id := chi.URLParam(r, "id")
	measurement, err := h.services.MeasurementService.GetMeasurement(ctx, principal.User.UserID, id)
	if err != nil {
		log.Err(err).Str("measurement_id", id).Msg("measurement lookup failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, measurement, http.StatusOK)
}

func (h *Handler) deleteMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, service.ErrSessionExpiredOrInvalid)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.services.MeasurementService.DeleteMeasurement(ctx, principal.User.UserID, id); err != nil {
		log.Err(err).Str("measurement_id", id).Msg("measurement deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// measurementFilterFromQuery parses the optional from/to query parameters
// (RFC 3339 timestamps) into a MeasurementFilter.
func measurementFilterFromQuery(r *http.Request) (models.MeasurementFilter, error) {
	var filter models.MeasurementFilter

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.MeasurementFilter{}, err
		}
		filter.From = &from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return models.MeasurementFilter{}, err
		}
		filter.To = &to
	}

	return filter, nil
}
