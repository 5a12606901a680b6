// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denteo

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both binaries. Service-specific requirements are
// checked by [StructuredConfig.ValidateIssuing] and
// [StructuredConfig.ValidateConsuming] from the respective main functions.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

// ValidateIssuing checks the configuration requirements of the auth server:
// a complete token trust contract and a reachable user store. A failure here
// is fatal at startup; the service must not fall back to per-request errors.
func (cfg *StructuredConfig) ValidateIssuing() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenAudience == "" {
		return ErrInvalidAuthConfigs
	}
	if cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// ValidateConsuming checks the configuration requirements of the clinic API.
// In local validation mode the full trust contract must be present; in
// remote mode only the auth service address is required.
func (cfg *StructuredConfig) ValidateConsuming() error {
	switch cfg.Adapter.ValidationMode {
	case ValidationModeLocal, "":
		if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenAudience == "" {
			return ErrInvalidAuthConfigs
		}
	case ValidationModeRemote:
		if cfg.Adapter.AuthAddress == "" {
			return ErrInvalidAdapterConfigs
		}
	default:
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
