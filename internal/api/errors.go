package api

import (
	"net/http"

	"devops-info/infoservice/internal/common"
)

// NotFound is installed as the router fallback for unmatched paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	common.RespondNotFound(w)
}

// MethodNotAllowed answers requests for a declared path with another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	common.RespondMethodNotAllowed(w)
}
