// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denteo

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/denteo/clinic-backend/internal/adapter"
	"github.com/denteo/clinic-backend/internal/identity"
	"github.com/denteo/clinic-backend/internal/service"
	"github.com/denteo/clinic-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenTableResolver resolves fixed token strings to fixed identities and
// rejects everything else, so routing tests can impersonate roles by
// choosing a bearer token.
func tokenTableResolver(table map[string]identity.Identity) adapter.TokenResolver {
	return &stubResolver{
		resolveFn: func(_ context.Context, tokenString string) (identity.Identity, error) {
			if id, ok := table[tokenString]; ok {
				return id, nil
			}
			return identity.Anonymous(), adapter.ErrTokenRejected
		},
	}
}

func TestAuthRoutes_UserAdministrationGating(t *testing.T) {
	resolver := tokenTableResolver(map[string]identity.Identity{
		"admin-token":   adminIdentity(),
		"patient-token": patientIdentity(7),
	})

	users := &mockUserService{
		listUsersFn: func(_ context.Context, _ models.UserFilter) ([]models.PublicUser, error) {
			return []models.PublicUser{}, nil
		},
		getUserFn: func(_ context.Context, userID int64) (models.PublicUser, error) {
			return models.PublicUser{UserID: userID}, nil
		},
	}

	h := newTestHandler(t, &service.Services{UserService: users}, resolver)
	srv := httptest.NewServer(h.InitAuthRoutes())
	defer srv.Close()

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{name: "list without token", method: http.MethodGet, path: "/api/users", wantStatus: http.StatusUnauthorized},
		{name: "list as patient", method: http.MethodGet, path: "/api/users", token: "patient-token", wantStatus: http.StatusForbidden},
		{name: "list as admin", method: http.MethodGet, path: "/api/users", token: "admin-token", wantStatus: http.StatusOK},
		{name: "own record as patient", method: http.MethodGet, path: "/api/users/7", token: "patient-token", wantStatus: http.StatusOK},
		{name: "other record as patient", method: http.MethodGet, path: "/api/users/8", token: "patient-token", wantStatus: http.StatusForbidden},
		{name: "record with garbage token", method: http.MethodGet, path: "/api/users/7", token: "forged-token", wantStatus: http.StatusUnauthorized},
		{name: "delete as patient", method: http.MethodDelete, path: "/api/users/7", token: "patient-token", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			require.NoError(t, err)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestAuthRoutes_PublicEndpointsNeedNoToken(t *testing.T) {
	auth := &mockAuthService{
		validateTokenFn: func(_ context.Context, _ string) (models.ValidateResult, error) {
			return models.ValidateResult{Valid: false}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth}, nil)
	srv := httptest.NewServer(h.InitAuthRoutes())
	defer srv.Close()

	resp, err := srv.Client().Post(srv.URL+"/api/auth/validate", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	// nil body is invalid JSON; the point is that the route answered
	// without demanding authentication.
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPIRoutes_RequireAuthentication(t *testing.T) {
	h := newTestHandler(t, &service.Services{AppointmentService: &mockAppointmentService{}}, nil)
	srv := httptest.NewServer(h.InitAPIRoutes())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/appointments/1")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{
		validateTokenFn: func(_ context.Context, _ string) (models.ValidateResult, error) {
			return models.ValidateResult{Valid: false}, nil
		},
	}}, nil)
	srv := httptest.NewServer(h.InitAuthRoutes())
	defer srv.Close()

	resp, err := srv.Client().Post(srv.URL+"/api/auth/validate", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}
