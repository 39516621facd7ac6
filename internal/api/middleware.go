package api

import (
	"net/http"
	"time"

	"scenario-validation-service/internal/platform/logger"
	"scenario-validation-service/internal/platform/obs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// statusWriter captures the final HTTP status code and number of bytes
// written. This helps distinguish "handler returned 200" from "client
// received a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestIDMiddleware tags every request with an id, propagated through the
// context for operation timing and echoed back to the client.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(obs.WithRequestID(r.Context(), id)))
	})
}

// loggingMiddleware logs end-to-end request duration and response size for
// basic observability.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{
			ResponseWriter: w,
			status:         0,
		}

		next.ServeHTTP(sw, r)

		logger.Get().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.RequestURI()),
			zap.Int("status", sw.status),
			zap.Int("bytes", sw.bytes),
			zap.Int64("dur_ms", time.Since(start).Milliseconds()),
			zap.String("req_id", obs.RequestID(r.Context())),
		)
	})
}
