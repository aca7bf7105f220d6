// Package requestid assigns every inbound request a correlation ID so that
// log lines from one request can be stitched together.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the HTTP header used to carry the correlation ID. Clients may
// supply their own; otherwise one is minted server-side.
const Header = "X-Request-ID"

type ctxKey struct{}

// FromContext returns the request ID stored in ctx, or "" when absent.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithRequestID returns a child context carrying the given ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Middleware ensures each request has an ID: a client-supplied X-Request-ID
// is trusted as-is, and a fresh UUID is generated when the header is empty.
// The ID is echoed back on the response and stored in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
