package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/denteo/clinic-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username: "alice",
		Email:    "alice@clinic.test",
		Password: "s3cret-pass",
		CPF:      "12345678901",
		Phone:    "+5511999990000",
		Role:     models.RoleUser,
	}
}

func TestValidate_RegisterRequest(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *models.RegisterRequest)
		wantField string
	}{
		{"valid", func(r *models.RegisterRequest) {}, ""},
		{"missing username", func(r *models.RegisterRequest) { r.Username = "" }, "username"},
		{"short username", func(r *models.RegisterRequest) { r.Username = "ab" }, "username"},
		{"bad email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *models.RegisterRequest) { r.Password = "short" }, "password"},
		{"bad cpf length", func(r *models.RegisterRequest) { r.CPF = "123" }, "cpf"},
		{"non-numeric cpf", func(r *models.RegisterRequest) { r.CPF = "1234567890a" }, "cpf"},
		{"unknown role", func(r *models.RegisterRequest) { r.Role = "Wizard" }, "role"},
		{"empty optional fields ok", func(r *models.RegisterRequest) { r.CPF = ""; r.Phone = ""; r.Role = "" }, ""},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.LoginRequest{Login: "alice", Password: "pw"})
	assert.NoError(t, err)

	err = v.Validate(context.Background(), models.LoginRequest{Login: "alice"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidate_UpdateUserRequest(t *testing.T) {
	v := NewRequestValidator()

	goodEmail := "new@clinic.test"
	badEmail := "nope"
	role := models.RoleDentist

	assert.NoError(t, v.Validate(context.Background(), models.UpdateUserRequest{Email: &goodEmail, Role: &role}))
	assert.NoError(t, v.Validate(context.Background(), models.UpdateUserRequest{}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.UpdateUserRequest{Email: &badEmail}), ErrValidation)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
