package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/denteo/clinic-backend/internal/identity"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/utils"
	"github.com/denteo/clinic-backend/models"
	"github.com/go-chi/chi/v5"
)

// idParam reads the {id} path parameter as a positive integer identifier.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidIDParam
	}
	return id, nil
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var filter models.UserFilter
	if role := r.URL.Query().Get("role"); role != "" {
		filter.Role = &role
	}
	if rawActive := r.URL.Query().Get("active"); rawActive != "" {
		active, err := strconv.ParseBool(rawActive)
		if err != nil {
			writeError(w, r, ErrInvalidQueryParam)
			return
		}
		filter.Active = &active
	}

	users, err := h.services.UserService.ListUsers(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int("count", len(users)).Msg("users listed")

	_, _ = utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !identity.FromContext(ctx).CanAccessUser(userID) {
		writeError(w, r, ErrForbidden)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err = h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user updated")

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) setUserActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SetUserActiveRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.setUserActive").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err = h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.SetUserActive(ctx, userID, *req.Active); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", userID).Bool("active", *req.Active).Msg("user active flag changed")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(ctx, userID); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", userID).Msg("user deleted")

	w.WriteHeader(http.StatusNoContent)
}
