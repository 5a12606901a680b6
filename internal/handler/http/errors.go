// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denteo

package http

import "errors"

// Sentinel errors produced at the transport layer itself, before any
// service is called. Callers can match against them with [errors.Is];
// errors_mapper.go assigns each its HTTP status.
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidIDParam is returned when a path parameter that must be a
	// positive integer identifier is not one.
	ErrInvalidIDParam = errors.New("invalid id parameter")

	// ErrInvalidQueryParam is returned when an optional query parameter
	// is present but cannot be parsed.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrUnauthenticated is returned by the authorization gates when the
	// request carries no authenticated identity.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when an authenticated caller lacks the role
	// or ownership required for the operation.
	ErrForbidden = errors.New("access denied")
)
