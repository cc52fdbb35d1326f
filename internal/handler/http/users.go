package http

import (
	"encoding/json"
	"net/http"

	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/utils"
	"github.com/harborlight/intake-server/models"
)

// createUserRequest is the admin payload for registering a staff account.
// The plaintext password never reaches the store; the service hashes it.
type createUserRequest struct {
	Username    string             `json:"username"`
	Password    string             `json:"password"`
	FullName    string             `json:"fullName"`
	Role        string             `json:"role"`
	Permissions models.Permissions `json:"permissions"`
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := parseListParams(r)

	users, pagination, err := h.services.UserService.List(r.Context(), page, limit)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing users failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse{Success: true, Data: users, Pagination: pagination}, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		badRequest(w, "invalid JSON was passed")
		return
	}

	user := models.User{
		Username: req.Username,
		FullName: req.FullName,
		Role:     req.Role,
	}

	created, err := h.services.UserService.Create(r.Context(), user, req.Password, req.Permissions)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", created.UserID).Str("username", created.Username).Msg("user created")

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: "User created successfully",
		Data:    created,
	}, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r)
	if !ok {
		badRequest(w, "invalid user id")
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		badRequest(w, "invalid JSON was passed")
		return
	}

	if err := h.services.UserService.Update(r.Context(), id, update); err != nil {
		log.Err(err).Int64("id", id).Msg("user update failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "User updated successfully"}, http.StatusOK)
}
