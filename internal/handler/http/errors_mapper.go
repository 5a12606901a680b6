package http

import (
	"errors"
	"net/http"

	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/service"
	"github.com/denteo/clinic-backend/internal/store"
	"github.com/denteo/clinic-backend/internal/utils"
	"github.com/denteo/clinic-backend/internal/validators"
	"github.com/denteo/clinic-backend/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrInvalidIDParam:    http.StatusBadRequest,
	ErrInvalidQueryParam: http.StatusBadRequest,
	ErrUnauthenticated:   http.StatusUnauthorized,
	ErrForbidden:         http.StatusForbidden,

	validators.ErrValidation: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrInvalidToken:            http.StatusUnauthorized,
	service.ErrInvalidStatusTransition: http.StatusConflict,

	store.ErrUsernameTaken:       http.StatusConflict,
	store.ErrEmailTaken:          http.StatusConflict,
	store.ErrCPFTaken:            http.StatusConflict,
	store.ErrUserNotFound:        http.StatusNotFound,
	store.ErrAppointmentNotFound: http.StatusNotFound,
	store.ErrNothingToUpdate:     http.StatusBadRequest,

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

// fieldFromError names the offending input field when the error identifies
// one: a validation failure or a duplicate on a unique column.
func fieldFromError(err error) string {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Field
	}

	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return "username"
	case errors.Is(err, store.ErrEmailTaken):
		return "email"
	case errors.Is(err, store.ErrCPFTaken):
		return "cpf"
	}
	return ""
}

// writeError renders err as the uniform JSON error body with the status
// from errorStatusMap. Unexpected errors are logged at error level and
// answered with a generic message so that internals never leak outward.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	response := models.ErrorResponse{
		Message: err.Error(),
		Field:   fieldFromError(err),
	}

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		response.Message = http.StatusText(http.StatusInternalServerError)
		response.Field = ""
	} else {
		log.Warn().Err(err).Int("status", status).Send()
	}

	_, _ = utils.WriteJSON(w, response, status)
}
