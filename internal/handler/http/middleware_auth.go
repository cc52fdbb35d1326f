package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/utils"
	"github.com/harborlight/intake-server/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via the auth service, and on success stores the authenticated
// user's ID in the request context under [utils.UserIDCtxKey] before
// delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, malformed, or signed with the wrong key.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			unauthorized(w, err.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			unauthorized(w, err.Error())
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requirePermission gates a route behind one permission flag. It must run
// after [Handler.auth]; the identity behind the context user ID is resolved
// on every request so that a revoked flag takes effect immediately.
func (h *Handler) requirePermission(allowed func(models.Permissions) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)
			ctx := r.Context()

			userID, ok := utils.GetUserIDFromContext(ctx)
			if !ok {
				log.Error().Msg("no user id in request context")
				unauthorized(w, http.StatusText(http.StatusUnauthorized))
				return
			}

			_, perms, err := h.services.AuthService.Identity(ctx, userID)
			if err != nil {
				log.Err(err).Int64("id", userID).Msg("identity lookup failed")
				unauthorized(w, http.StatusText(http.StatusUnauthorized))
				return
			}

			if !allowed(perms) {
				log.Warn().Int64("id", userID).Msg("insufficient permissions")
				utils.WriteJSON(w, models.Response{Success: false, Error: ErrInsufficientPermissions.Error()}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.Response{Success: false, Error: message}, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
