package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/service"
	"github.com/harborlight/intake-server/internal/store"
	"github.com/harborlight/intake-server/internal/utils"
	"github.com/harborlight/intake-server/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds loginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		badRequest(w, "invalid JSON was passed")
		return
	}

	user, perms, err := h.services.AuthService.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid credentials provided")
			badRequest(w, "username and password are required")
			return
		case errors.Is(err, store.ErrNoUserWasFound),
			errors.Is(err, service.ErrWrongPassword),
			errors.Is(err, service.ErrAccountDisabled):
			// an unknown username and a wrong password are indistinguishable
			log.Warn().Str("username", creds.Username).Msg("login rejected")
			utils.WriteJSON(w, models.Response{Success: false, Error: "invalid username or password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			h.writeError(w, r, err)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.UserID).Str("username", user.Username).Msg("user logged in")

	utils.WriteJSON(w, models.Response{
		Success: true,
		Data: models.LoginResponse{
			Token:       token.SignedString,
			User:        user,
			Permissions: perms,
		},
	}, http.StatusOK)
}

// verify answers the identity and permission flags behind a bearer token.
// The auth middleware has already validated the token and stored the user ID
// in the request context.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.Response{Success: false, Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	user, perms, err := h.services.AuthService.Identity(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("identity lookup failed")
		utils.WriteJSON(w, models.Response{Success: false, Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Data: models.LoginResponse{
			User:        user,
			Permissions: perms,
		},
	}, http.StatusOK)
}
