package http

import (
	"net/http"

	"github.com/denteo/clinic-backend/internal/identity"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/utils"
)

// authenticate resolves the bearer token of the incoming request into a
// caller identity and stores it in the request context.
//
// It never aborts the request: an absent header, an unparseable header, a
// rejected token, and an unreachable resolver all degrade to the anonymous
// identity, and the pipeline continues. Whether anonymous callers may
// proceed is decided separately by requireAuth and requireRoles, which
// keeps "who are you" and "may you pass" independently testable.
//
// Rejected tokens are logged via the context-scoped logger so that
// operators can distinguish a missing token from a tampered one.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		id := identity.Anonymous()
		if tokenString, ok := utils.BearerToken(r); ok {
			resolved, err := h.resolver.Resolve(ctx, tokenString)
			if err != nil {
				log.Warn().Err(err).Str("func", "*Handler.authenticate").Msg("bearer token rejected")
			} else {
				id = resolved
			}
		}

		next.ServeHTTP(w, r.WithContext(identity.WithIdentity(ctx, id)))
	})
}

// requireAuth rejects anonymous callers with 401. It must run below
// authenticate in the middleware chain.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !identity.FromContext(r.Context()).Authenticated {
			writeError(w, r, ErrUnauthenticated)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireRoles rejects callers that hold none of the given roles. An
// anonymous caller gets 401; an authenticated caller with the wrong role
// gets 403. It must run below authenticate in the middleware chain.
func (h *Handler) requireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := identity.FromContext(r.Context())
			if !id.Authenticated {
				writeError(w, r, ErrUnauthenticated)
				return
			}
			if !id.HasRole(roles...) {
				writeError(w, r, ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
