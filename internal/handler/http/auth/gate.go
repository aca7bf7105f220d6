// Package auth implements the admin gate protecting mutating routes.
//
// Authorization is a single shared secret delivered via the X-Admin-Token
// header. When no secret is configured the gate fails closed: every gated
// request is rejected. All failure modes (missing header, wrong token,
// unconfigured secret) produce the same response so callers cannot probe
// whether a secret exists.
package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/respond"
)

// TokenHeader is the HTTP header carrying the admin secret.
const TokenHeader = "X-Admin-Token"

var errUnauthorized = errors.New("unauthorized")

// Gate guards mutating routes with a shared admin secret.
type Gate struct {
	token string
}

// NewGate creates a gate for the given shared secret.
// An empty secret locks every gated route.
func NewGate(adminToken string) *Gate {
	return &Gate{token: adminToken}
}

// Configured reports whether an admin secret is set.
// Used by the diagnostic endpoint only; it must never influence responses on
// gated routes.
func (g *Gate) Configured() bool {
	return g.token != ""
}

// Require wraps next so it only runs for requests carrying the admin secret.
func (g *Gate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.authorized(r.Header.Get(TokenHeader)) {
			respond.Error(w, http.StatusUnauthorized, errUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authorized compares the supplied token against the configured secret in
// constant time. An unconfigured secret rejects everything.
func (g *Gate) authorized(supplied string) bool {
	if g.token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(g.token)) == 1
}
