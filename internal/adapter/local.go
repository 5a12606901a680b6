package adapter

import (
	"context"
	"fmt"

	"github.com/denteo/clinic-backend/internal/config"
	"github.com/denteo/clinic-backend/internal/identity"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/token"
)

type localTokenResolver struct {
	validator *token.Validator

	logger *logger.Logger
}

// NewLocalTokenResolver constructs a [TokenResolver] that verifies tokens
// in-process against the shared trust contract in authCfg. No network is
// involved; deactivations become visible only when the account's current
// token expires, which is the accepted trade-off of local validation.
//
// Returns an error if the trust contract in authCfg is incomplete.
func NewLocalTokenResolver(authCfg config.Auth, logger *logger.Logger) (TokenResolver, error) {
	validator, err := token.NewValidator(authCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResolverConfig, err)
	}

	return &localTokenResolver{validator: validator, logger: logger}, nil
}

// Resolve implements [TokenResolver]. Every validation failure collapses
// to [ErrTokenRejected]; the specific reason is kept in the wrapped error
// for logs only.
func (l *localTokenResolver) Resolve(ctx context.Context, tokenString string) (identity.Identity, error) {
	claims, err := l.validator.Validate(ctx, tokenString)
	if err != nil {
		return identity.Anonymous(), fmt.Errorf("%w: %w", ErrTokenRejected, err)
	}

	id, err := identity.FromClaims(claims)
	if err != nil {
		return identity.Anonymous(), fmt.Errorf("%w: %w", ErrTokenRejected, err)
	}

	return id, nil
}
