package common

import (
	"encoding/json"
	"net/http"

	"devops-info/infoservice/internal/logging"
	"devops-info/infoservice/internal/models/dtos/responses"
)

// RespondJSON marshals body and writes it with the given status code.
// Marshalling happens before any header is written so a failure can still
// be reported as a 500.
func RespondJSON(w http.ResponseWriter, code int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
		RespondInternalError(w)
		return
	}

	writeJSON(w, code, payload)
}

// RespondError sends one of the fixed error bodies.
func RespondError(w http.ResponseWriter, code int, title string, message string) {
	payload, err := json.Marshal(responses.ErrorResponse{Error: title, Message: message})
	if err != nil {
		// ErrorResponse holds two strings; this cannot fail.
		http.Error(w, title, code)
		return
	}

	writeJSON(w, code, payload)
}

// writeJSON writes a pre-encoded body.
func writeJSON(w http.ResponseWriter, code int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if _, err := w.Write(append(payload, '\n')); err != nil {
		logging.Debug("Response write failed", "error", err.Error())
	}
}
