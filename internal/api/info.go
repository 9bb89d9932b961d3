package api

import (
	"net/http"

	"devops-info/infoservice/internal/common"
	"devops-info/infoservice/internal/constants"
	"devops-info/infoservice/internal/logging"
	"devops-info/infoservice/internal/middleware"
	"devops-info/infoservice/internal/models/dtos/responses"
)

// GetInfo handles GET /
//
// Reports the service descriptor, a fresh host snapshot, uptime, an echo of
// the request and the list of endpoints.
func (h *Handlers) GetInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		system, err := h.deps.System.Collect(r.Context())
		if err != nil {
			logging.Error("Failed to collect system info",
				"request_id", middleware.GetRequestID(r.Context()),
				"error", err.Error(),
			)
			common.RespondInternalError(w)
			return
		}

		resp := responses.InfoResponse{
			Service:   h.deps.Service,
			System:    system,
			Runtime:   h.deps.Clock.Runtime(),
			Request:   requestInfo(r),
			Endpoints: h.deps.Endpoints,
		}
		common.RespondJSON(w, http.StatusOK, resp)
	}
}

func requestInfo(r *http.Request) responses.RequestInfo {
	info := responses.RequestInfo{
		ClientIP: middleware.ClientIP(r),
		Method:   r.Method,
		Path:     r.URL.Path,
	}
	if values := r.Header.Values(constants.HeaderUserAgent); len(values) > 0 {
		ua := values[0]
		info.UserAgent = &ua
	}
	return info
}
