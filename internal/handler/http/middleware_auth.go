// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it to a user record via [service.AuthService.ResolveToken], and —
// on success — stores the resolved user in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent or cannot be parsed as a bearer
//     token (sentinel errors of [utils.ParseBearerToken]).
//   - The token is expired, malformed, carries a bad signature, or names a
//     subject that no longer exists.
//
// All token failures produce the same generic 401 body with a
// "WWW-Authenticate: Bearer" header, so callers cannot distinguish which
// check failed. The specific cause is still logged via the context-scoped
// logger obtained from [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			writeUnauthorized(w, "not authenticated")
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("could not resolve bearer token")
			writeUnauthorized(w, "could not validate credentials")
			return
		}

		// Store the resolved user in the context so that downstream handlers
		// can retrieve it without re-parsing the token or re-querying the store.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
