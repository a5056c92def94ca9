package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request. Requests slower than slow are
// logged at warn level; slow <= 0 disables the warning.
func RequestLogger(logger logrus.FieldLogger, slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)

			entry := logger.WithFields(logrus.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"ip":          r.RemoteAddr,
				"status":      status,
				"duration_ms": elapsed.Milliseconds(),
				"request_id":  chimw.GetReqID(r.Context()),
			})
			if slow > 0 && elapsed > slow {
				entry.Warnf("Slow request: %s %s took %d ms", r.Method, r.URL.Path, elapsed.Milliseconds())
				return
			}
			entry.Info("http request")
		})
	}
}
