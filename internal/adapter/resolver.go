package adapter

import (
	"fmt"

	"github.com/denteo/clinic-backend/internal/config"
	"github.com/denteo/clinic-backend/internal/logger"
)

// NewTokenResolver constructs the [TokenResolver] selected by
// adapterCfg.ValidationMode. Local mode verifies tokens in-process with
// the shared secret from authCfg; remote mode round-trips each token to
// the auth service at adapterCfg.AuthAddress. An empty mode defaults to
// local.
//
// Returns [ErrBadResolverConfig] (wrapped) for an unknown mode, or the
// underlying constructor's error if its configuration is incomplete.
func NewTokenResolver(adapterCfg config.Adapter, authCfg config.Auth, logger *logger.Logger) (TokenResolver, error) {
	switch adapterCfg.ValidationMode {
	case config.ValidationModeLocal, "":
		return NewLocalTokenResolver(authCfg, logger)
	case config.ValidationModeRemote:
		return NewHTTPTokenResolver(adapterCfg, logger)
	default:
		return nil, fmt.Errorf("%w: unknown validation mode %q", ErrBadResolverConfig, adapterCfg.ValidationMode)
	}
}
