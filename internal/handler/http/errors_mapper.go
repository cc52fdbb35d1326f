package http

import (
	"errors"
	"net/http"

	"github.com/harborlight/intake-server/internal/service"
	"github.com/harborlight/intake-server/internal/store"
	"github.com/harborlight/intake-server/internal/utils"
	"github.com/harborlight/intake-server/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrAccountDisabled:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrUnknownMasterDataField:  http.StatusNotFound,

	store.ErrSubmissionNotFound:    http.StatusNotFound,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNothingToUpdate:       http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes the uniform failure
// envelope. Server-side failures hide the underlying error text unless the
// process runs in development mode.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError && !h.dev {
		message = http.StatusText(status)
	}

	utils.WriteJSON(w, models.Response{Success: false, Error: message}, status)
}
