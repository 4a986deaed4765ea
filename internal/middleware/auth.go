// Package middleware provides http.RoundTripper wrappers shared by all
// outgoing API calls: bearer authorization and request logging.
package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-petr/trade-ledger/pkg/tokenpkg"
)

// AuthorizationHeaderKey is the header carrying the bearer token.
const AuthorizationHeaderKey = "Authorization"

// AuthRoundTripper injects a bearer token from the cache into every
// outgoing request.
type AuthRoundTripper struct {
	Tokens *tokenpkg.Cache
	Next   http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (rt *AuthRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	token, err := rt.Tokens.Token(r.Context())
	if err != nil {
		return nil, fmt.Errorf("acquire token: %w", err)
	}

	// Per http.RoundTripper contract the request must not be mutated.
	clone := r.Clone(r.Context())
	clone.Header.Set(AuthorizationHeaderKey, "Bearer "+token)

	next := rt.Next
	if next == nil {
		next = http.DefaultTransport
	}

	return next.RoundTrip(clone)
}
