// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denteo

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/denteo/clinic-backend/internal/adapter"
	"github.com/denteo/clinic-backend/internal/identity"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/service"
	"github.com/denteo/clinic-backend/internal/validators"
	"github.com/denteo/clinic-backend/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn      func(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	loginFn         func(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	refreshFn       func(ctx context.Context, tokenString string) (models.AuthResult, error)
	validateTokenFn func(ctx context.Context, tokenString string) (models.ValidateResult, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Refresh(ctx context.Context, tokenString string) (models.AuthResult, error) {
	return m.refreshFn(ctx, tokenString)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, tokenString string) (models.ValidateResult, error) {
	return m.validateTokenFn(ctx, tokenString)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	getUserFn       func(ctx context.Context, userID int64) (models.PublicUser, error)
	listUsersFn     func(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error)
	updateUserFn    func(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.PublicUser, error)
	setUserActiveFn func(ctx context.Context, userID int64, active bool) error
	deleteUserFn    func(ctx context.Context, userID int64) error
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.PublicUser, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error) {
	return m.listUsersFn(ctx, filter)
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.PublicUser, error) {
	return m.updateUserFn(ctx, userID, req)
}

func (m *mockUserService) SetUserActive(ctx context.Context, userID int64, active bool) error {
	return m.setUserActiveFn(ctx, userID, active)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

// mockAppointmentService implements service.AppointmentService for unit tests.
type mockAppointmentService struct {
	createFn       func(ctx context.Context, req models.CreateAppointmentRequest) (models.Appointment, error)
	getFn          func(ctx context.Context, appointmentID int64) (models.Appointment, error)
	listFn         func(ctx context.Context, patientID int64) ([]models.Appointment, error)
	updateStatusFn func(ctx context.Context, appointmentID int64, status string) error
}

func (m *mockAppointmentService) CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (models.Appointment, error) {
	return m.createFn(ctx, req)
}

func (m *mockAppointmentService) GetAppointment(ctx context.Context, appointmentID int64) (models.Appointment, error) {
	return m.getFn(ctx, appointmentID)
}

func (m *mockAppointmentService) ListPatientAppointments(ctx context.Context, patientID int64) ([]models.Appointment, error) {
	return m.listFn(ctx, patientID)
}

func (m *mockAppointmentService) UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) error {
	return m.updateStatusFn(ctx, appointmentID, status)
}

// stubResolver implements adapter.TokenResolver with a single overridable
// function field.
type stubResolver struct {
	resolveFn func(ctx context.Context, tokenString string) (identity.Identity, error)
}

func (s *stubResolver) Resolve(ctx context.Context, tokenString string) (identity.Identity, error) {
	return s.resolveFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks, a real
// request validator, and a resolver that rejects everything unless
// overridden.
func newTestHandler(t *testing.T, svcs *service.Services, resolver adapter.TokenResolver) *Handler {
	t.Helper()

	if resolver == nil {
		resolver = &stubResolver{
			resolveFn: func(_ context.Context, _ string) (identity.Identity, error) {
				return identity.Anonymous(), adapter.ErrTokenRejected
			},
		}
	}

	return NewHandler(svcs, resolver, validators.NewRequestValidator(), logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// asIdentity attaches an authenticated identity to the request context, as
// the authenticate middleware would have done.
func asIdentity(r *http.Request, id identity.Identity) *http.Request {
	return r.WithContext(identity.WithIdentity(r.Context(), id))
}

func patientIdentity(userID int64) identity.Identity {
	return identity.Identity{Authenticated: true, UserID: userID, Username: "patient", Role: models.RoleUser}
}

func dentistIdentity() identity.Identity {
	return identity.Identity{Authenticated: true, UserID: 500, Username: "dentist", Role: models.RoleDentist}
}

func adminIdentity() identity.Identity {
	return identity.Identity{Authenticated: true, UserID: 900, Username: "admin", Role: models.RoleAdmin}
}

// decodeErrorResponse parses the uniform JSON error body.
func decodeErrorResponse(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}
