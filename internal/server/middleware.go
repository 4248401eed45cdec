// internal/server/middleware.go
package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// withCORS applies the configured allow-list; "*" allows any origin.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := "*"
		if len(s.allowedOrigins) > 0 && s.allowedOrigins[0] != "*" {
			origin = ""
			for _, allowed := range s.allowedOrigins {
				if allowed == r.Header.Get("Origin") {
					origin = allowed
					break
				}
			}
		}

		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRequestID tags every request with a correlation ID, echoed in the
// response header.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request handled", map[string]interface{}{
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    rec.status,
			"requestId": rec.Header().Get("X-Request-Id"),
			"duration":  time.Since(start).String(),
		})
	})
}
