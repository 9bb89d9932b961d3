package api

import (
	"net/http"

	"devops-info/infoservice/internal/common"
	"devops-info/infoservice/internal/constants"
	"devops-info/infoservice/internal/models/dtos/responses"
)

// HealthCheck handles GET /health
//
// Always healthy while the process can serve requests. uptime_seconds never
// decreases within one process.
func (h *Handlers) HealthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clock := h.deps.Clock
		now := clock.Now()

		resp := responses.HealthResponse{
			Status:        string(constants.HealthStatusHealthy),
			Timestamp:     clock.Timestamp(now),
			UptimeSeconds: clock.Seconds(now),
		}
		common.RespondJSON(w, http.StatusOK, resp)
	}
}
