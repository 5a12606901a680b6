package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/denteo/clinic-backend/internal/config"
	"github.com/denteo/clinic-backend/internal/identity"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/utils"
	"github.com/denteo/clinic-backend/models"
)

type httpTokenResolver struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPTokenResolver constructs a [TokenResolver] that asks the auth
// service for a verdict on every token. It normalises and validates the
// base URL from adapterCfg.AuthAddress and configures the underlying HTTP
// client with the resolved base URL and request timeout.
//
// Returns [ErrBadResolverConfig] (wrapped) if adapterCfg.AuthAddress is
// empty or cannot be parsed as a valid URL.
func NewHTTPTokenResolver(adapterCfg config.Adapter, logger *logger.Logger) (TokenResolver, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.AuthAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid auth address: %w", ErrBadResolverConfig, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpTokenResolver{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Resolve implements [TokenResolver]. It POSTs the token to
// POST /api/auth/validate and maps the verdict: the endpoint answers 200
// for every examined token, with the valid flag carrying the verdict, so
// any non-200 status means the auth service itself is misbehaving and is
// reported as [ErrResolverUnavailable].
func (h *httpTokenResolver) Resolve(ctx context.Context, tokenString string) (identity.Identity, error) {
	var result models.ValidateResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ValidateRequest{Token: tokenString}).
		SetResult(&result).
		Post("/api/auth/validate")
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "Resolve").Msg("validate request failed")
		return identity.Anonymous(), fmt.Errorf("%w: %w", ErrResolverUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		h.logger.Warn().Int("status", resp.StatusCode()).Str("func", "Resolve").Msg("unexpected validate status")
		return identity.Anonymous(), fmt.Errorf("%w: auth service answered %d", ErrResolverUnavailable, resp.StatusCode())
	}

	if !result.Valid || result.User == nil {
		return identity.Anonymous(), ErrTokenRejected
	}

	return identityFromPublicUser(*result.User), nil
}

func identityFromPublicUser(user models.PublicUser) identity.Identity {
	return identity.Identity{
		Authenticated: true,
		UserID:        user.UserID,
		Username:      user.Username,
		Email:         user.Email,
		Role:          user.Role,
		CPF:           user.CPF,
		Phone:         user.Phone,
	}
}
