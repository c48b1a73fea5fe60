package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lexicult/lexicult-backend/pkg/ctxutil"
)

// RequestIDHeader carries the correlation ID on requests and responses.
const RequestIDHeader = "X-Request-Id"

// RequestID attaches a correlation ID to every request. An incoming
// X-Request-Id is trusted and propagated; otherwise a fresh UUID is
// generated. The ID is stored in the context and echoed on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
