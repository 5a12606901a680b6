package http

import (
	"encoding/json"
	"net/http"

	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/utils"
	"github.com/denteo/clinic-backend/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", result.User.UserID).Str("username", result.User.Username).Msg("user registered")

	_, _ = utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", result.User.UserID).Msg("user logged in")

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.refresh").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Refresh(ctx, req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

// validate is the service-to-service endpoint behind remote token
// validation. Every examined token is answered with 200 and an explicit
// verdict; only an undecodable request body is an error. A rejected token
// is a negative answer, not a failure, which lets the remote resolver
// treat any non-200 status as "the auth service is broken".
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.validate").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	result, err := h.services.AuthService.ValidateToken(ctx, req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
