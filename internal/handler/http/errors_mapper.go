package http

import (
	"errors"
	"net/http"

	"github.com/vitalog/vitalog/internal/service"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrPasswordsDoNotMatch: http.StatusBadRequest,
	service.ErrWeakPassword:        http.StatusBadRequest,
	service.ErrUnknownRole:         http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrSessionExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrInsufficientRole: http.StatusForbidden,
	service.ErrSelfRoleChange:   http.StatusForbidden,
	service.ErrSelfDeletion:     http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrOpenFastExists:     http.StatusConflict,

	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrNoMeasurementWasFound: http.StatusNotFound,
	store.ErrNoWaterEntryWasFound:  http.StatusNotFound,
	store.ErrNoFastWasFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err onto its HTTP status and renders the uniform JSON
// error body. Internal errors are masked behind the generic status text so
// storage details never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
