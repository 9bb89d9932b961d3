package common

import (
	"net/http"

	"devops-info/infoservice/internal/constants"
)

func RespondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound, constants.ErrNotFound, constants.MsgEndpointNotFound)
}

func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed, constants.ErrMethodNotAllowed, constants.MsgMethodNotAllowed)
}

func RespondTooManyRequests(w http.ResponseWriter) {
	RespondError(w, http.StatusTooManyRequests, constants.ErrTooManyRequests, constants.MsgRateLimitExceeded)
}

// RespondInternalError never exposes the underlying cause to the client.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, constants.ErrInternalServerError, constants.MsgUnexpectedError)
}
