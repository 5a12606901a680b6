// Package http implements the HTTP transport layer of both backend binaries.
//
// It exposes route wiring for the auth server and the clinic API server,
// request handlers, and middleware. Cross-cutting concerns such as
// authentication, request tracing, and access logging are handled in this
// package before requests are delegated to the service layer.
//
// Authentication is deliberately split in two: the authenticate middleware
// resolves the bearer token into an identity without ever aborting the
// request, and the requireAuth/requireRoles gates decide whether that
// identity may proceed. Handlers below the gates read the identity from the
// request context and never touch the raw token.
package http
