package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger returns middleware that emits one structured line per request:
// method, path, peer address, and elapsed time.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			next.ServeHTTP(w, r)
			logger.Info(
				"http request",
				"method", r.Method,
				"path", r.URL.RequestURI(),
				"remote", r.RemoteAddr,
				"elapsed", time.Since(started),
			)
		})
	}
}
