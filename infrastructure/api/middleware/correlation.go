package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/agenticlabs/semsearch/internal/log"
)

// correlationHeader is the header carrying the caller's correlation ID.
const correlationHeader = "X-Correlation-ID"

// Correlation returns a middleware that propagates a correlation ID through
// the request context and echoes it back on the response. When the caller
// does not supply one, the chi request ID is used.
func Correlation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationHeader)
			if id == "" {
				id = middleware.GetReqID(r.Context())
			}

			if id != "" {
				w.Header().Set(correlationHeader, id)
				r = r.WithContext(log.WithCorrelationID(r.Context(), id))
			}

			next.ServeHTTP(w, r)
		})
	}
}
