package http

import (
	"context"
	"net/http"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token
// via [utils.ParseBearerToken], validates it through
// [service.AuthService.ParseToken], and — on success — stores the
// authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// Every rejection — absent header, malformed header, expired or invalid
// token — produces the same uniform "Access unauthorized." response, so an
// anonymous caller learns nothing about which check failed or which
// operation was attempted. The specific cause is still logged via the
// context-scoped logger obtained from [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			accessUnauthorized(w)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			accessUnauthorized(w)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			accessUnauthorized(w)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
