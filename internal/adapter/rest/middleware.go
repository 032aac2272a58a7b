package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID returns the id assigned by RequestLogger, or "" outside a request
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestLogger tags each request with an id and logs it once it completes
func RequestLogger(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			m := httpsnoop.CaptureMetrics(next, w, r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID)))

			entry := logger.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     m.Code,
				"bytes":      m.Written,
				"duration":   m.Duration.String(),
			})
			if m.Code >= http.StatusInternalServerError {
				entry.Error("http request")
				return
			}
			entry.Info("http request")
		})
	}
}

const corsMaxAge = 600

// CORS allows browsers from the configured origins; "*" allows any origin.
// Credentials are allowed, so the request origin is echoed rather than "*".
// Preflight requests are answered here and never reach the router.
func CORS(origins []string) func(http.Handler) http.Handler {
	opts := []handlers.CORSOption{
		handlers.AllowCredentials(),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", RequestIDHeader}),
		handlers.ExposedHeaders([]string{"Content-Disposition", RequestIDHeader}),
		handlers.MaxAge(corsMaxAge),
	}

	allowed := make([]string, 0, len(origins))
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		switch origin {
		case "":
			continue
		case "*":
			allowAll = true
		}
		allowed = append(allowed, origin)
	}

	// a validator makes the handler echo the origin instead of "*"
	switch {
	case allowAll:
		opts = append(opts, handlers.AllowedOriginValidator(func(string) bool { return true }))
	case len(allowed) == 0:
		opts = append(opts, handlers.AllowedOriginValidator(func(string) bool { return false }))
	default:
		opts = append(opts, handlers.AllowedOrigins(allowed))
	}

	return handlers.CORS(opts...)
}
