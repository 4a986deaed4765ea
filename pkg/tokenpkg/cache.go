// Package tokenpkg manages bearer tokens on the client side.
//
// Tokens are minted by the identity provider; the client never verifies
// signatures. The cache only reads the JWT exp claim to decide when to
// ask the provider for a fresh token.
package tokenpkg

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrEmptyToken indicates that the provider returned an empty token.
var ErrEmptyToken = errors.New("empty token")

// Provider returns a fresh bearer token from the identity provider.
type Provider func(ctx context.Context) (string, error)

// refreshMargin is how long before expiry a token is considered stale.
const refreshMargin = 30 * time.Second

// Cache caches a bearer token and refreshes it through the provider
// shortly before it expires.
type Cache struct {
	provider Provider

	mu      sync.Mutex
	token   string
	expires time.Time
}

// NewCache returns a token cache backed by the given provider.
func NewCache(p Provider) *Cache {
	return &Cache{provider: p}
}

// Token returns a cached bearer token, refreshing it if it is missing
// or about to expire.
func (c *Cache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Until(c.expires) > refreshMargin {
		return c.token, nil
	}

	token, err := c.provider(ctx)
	if err != nil {
		return "", err
	}

	if token == "" {
		return "", ErrEmptyToken
	}

	c.token = token
	c.expires = expiryOf(token)

	return c.token, nil
}

// expiryOf reads the exp claim without verifying the signature. Tokens
// that are not JWTs or carry no exp are treated as never expiring and
// kept until the next process start.
func expiryOf(token string) time.Time {
	claims := jwt.RegisteredClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return time.Now().Add(24 * time.Hour)
	}

	return claims.ExpiresAt.Time
}
