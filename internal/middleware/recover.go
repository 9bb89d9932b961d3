package middleware

import (
	"net/http"
	"runtime/debug"

	"devops-info/infoservice/internal/common"
	"devops-info/infoservice/internal/logging"
)

// Recoverer turns a panic in any downstream handler into the fixed 500 body.
// The panic value and stack are logged, never returned to the client.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// net/http uses this to abort the response silently.
				panic(rec)
			}

			logging.WithRequest(GetRequestID(r.Context()), r.Method, r.URL.Path).Errorw(
				"Recovered from panic",
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			common.RespondInternalError(w)
		}()

		next.ServeHTTP(w, r)
	})
}
