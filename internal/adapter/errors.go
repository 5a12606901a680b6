package adapter

import "errors"

var (
	// ErrTokenRejected means the token was examined and found invalid:
	// bad signature, expired, wrong issuer or audience, malformed, or the
	// account behind it is no longer active.
	ErrTokenRejected = errors.New("token rejected")

	// ErrResolverUnavailable means no verdict could be reached, e.g. the
	// auth service did not answer in remote mode.
	ErrResolverUnavailable = errors.New("token resolver unavailable")

	// ErrBadResolverConfig is returned by the resolver constructors when
	// the configuration is incomplete or names an unknown validation mode.
	// Fatal at startup.
	ErrBadResolverConfig = errors.New("invalid token resolver configuration")
)
