package middleware

import (
	"context"
	"net/http"

	"github.com/frahmantamala/hr-dashboard/pkg/logger"
	"github.com/go-chi/chi/middleware"

	"github.com/google/uuid"
)

const TraceIDHeader = "X-Trace-ID"

// RequestID accepts an incoming X-Trace-ID or mints one, echoes it on the
// response and attaches it to the request-scoped logger and chi's request id.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		// inject into context
		ctx := logger.With(r.Context(), "traceID", traceID)
		ctx = context.WithValue(ctx, middleware.RequestIDKey, traceID)

		// propagate back to response
		w.Header().Set(TraceIDHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
