package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. All of them are fatal at startup.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates an incomplete token trust contract
	// (missing signing secret, issuer, audience, or a non-positive TTL).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid settings for the outbound
	// auth service adapter (missing address or unknown validation mode).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
