package http

import (
	"net/http"

	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/utils"
	"github.com/harborlight/intake-server/models"
)

// health reports process liveness and store connectivity. A failed database
// ping degrades the response to 503 so load balancers stop routing here.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatus{Success: true, Status: "ok", Database: "connected"}
	code := http.StatusOK

	if err := h.db.PingContext(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("database ping failed")
		status = models.HealthStatus{Success: false, Status: "degraded", Database: "disconnected"}
		code = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, status, code)
}
