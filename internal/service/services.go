package service

import (
	"fmt"

	"github.com/denteo/clinic-backend/internal/config"
	"github.com/denteo/clinic-backend/internal/events"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/password"
	"github.com/denteo/clinic-backend/internal/store"
	"github.com/denteo/clinic-backend/internal/token"
)

// Services bundles every service implementation for injection into the
// transport layer.
type Services struct {
	AuthService        AuthService
	UserService        UserService
	AppointmentService AppointmentService
	AppInfoService     AppInfoService
}

// NewServices constructs the full service set of the auth server over the
// given repositories and event publisher. Fails when the token trust
// contract in cfg is invalid.
func NewServices(repositories *store.Repositories, publisher events.Publisher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	issuer, err := token.NewIssuer(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("building token issuer: %w", err)
	}

	tokenValidator, err := token.NewValidator(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("building token validator: %w", err)
	}

	hasher := password.NewHasher()

	return &Services{
		AuthService:        NewAuthService(repositories.UserRepository, hasher, issuer, tokenValidator, publisher, logger),
		UserService:        NewUserService(repositories.UserRepository, logger),
		AppointmentService: NewAppointmentService(repositories.AppointmentRepository, logger),
		AppInfoService:     NewAppInfoService(cfg.App),
	}, nil
}

// NewAPIServices constructs the service set of the clinic API server. It
// deliberately omits the auth and user services: the API server never
// issues tokens and, in remote validation mode, holds no signing secret.
//
// AuthService and UserService are nil in the returned set. Routes wired
// from it must stay within the appointment and app-info surfaces;
// InitAPIRoutes does exactly that.
func NewAPIServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AppointmentService: NewAppointmentService(repositories.AppointmentRepository, logger),
		AppInfoService:     NewAppInfoService(cfg.App),
	}
}
