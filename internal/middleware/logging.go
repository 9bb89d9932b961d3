package middleware

import (
	"net/http"
	"time"

	"devops-info/infoservice/internal/logging"
)

// Logging writes one debug line when a request arrives and one when it
// completes. Server errors are logged at error level.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logging.WithRequest(GetRequestID(r.Context()), r.Method, r.URL.Path)
		log.Debugw("Request received", "remote_addr", r.RemoteAddr)

		lw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		start := time.Now()
		next.ServeHTTP(lw, r)
		dur := time.Since(start)

		fields := []interface{}{
			"status_code", lw.statusCode,
			"duration_ms", dur.Milliseconds(),
		}
		if lw.statusCode >= http.StatusInternalServerError {
			log.Errorw("HTTP request failed", fields...)
			return
		}
		log.Debugw("HTTP request completed", fields...)
	})
}
