// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denteo

// Package adapter resolves bearer tokens into caller identities for the
// clinic API.
//
// The primary abstraction is [TokenResolver], which decouples the HTTP
// middleware from the mechanics of token validation. Two implementations
// ship with the package: a local one that verifies signatures in-process
// with the shared secret ([NewLocalTokenResolver]) and a remote one that
// round-trips to the auth service's validate endpoint
// ([NewHTTPTokenResolver]). Which one a deployment uses is a topology
// decision made in configuration; both satisfy the same contract and the
// middleware cannot tell them apart.
//
// Error values defined in errors.go separate "this token is no good"
// ([ErrTokenRejected]) from "I could not find out" ([ErrResolverUnavailable])
// so that callers can use [errors.Is] for transport-agnostic handling.
package adapter

import (
	"context"

	"github.com/denteo/clinic-backend/internal/identity"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_resolver_mock.go -package=mock

// TokenResolver turns a raw bearer token string into the identity of the
// caller that presented it.
type TokenResolver interface {
	// Resolve validates tokenString and returns the authenticated identity
	// embedded in it. Returns [ErrTokenRejected] (wrapped) when the token
	// fails validation for any reason, or [ErrResolverUnavailable] (wrapped)
	// when the answer could not be obtained at all, e.g. the auth service
	// is unreachable in remote mode. Callers must treat both as an
	// unauthenticated request; the distinction matters only for logging.
	Resolve(ctx context.Context, tokenString string) (identity.Identity, error)
}
