package tokenpkg

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key-test-key-test-key-test!"))
	require.NoError(t, err)

	return token
}

func TestTokenCachesUntilExpiry(t *testing.T) {
	t.Parallel()

	calls := 0
	fresh := signedToken(t, time.Now().Add(time.Hour))

	cache := NewCache(func(ctx context.Context) (string, error) {
		calls++
		return fresh, nil
	})

	for i := 0; i < 3; i++ {
		got, err := cache.Token(context.Background())
		require.NoError(t, err)
		require.Equal(t, fresh, got)
	}

	require.Equal(t, 1, calls)
}

func TestTokenRefreshesStale(t *testing.T) {
	t.Parallel()

	tokens := []string{
		signedToken(t, time.Now().Add(5*time.Second)), // inside the refresh margin
		signedToken(t, time.Now().Add(time.Hour)),
	}

	calls := 0
	cache := NewCache(func(ctx context.Context) (string, error) {
		token := tokens[calls]
		calls++
		return token, nil
	})

	got, err := cache.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, tokens[0], got)

	got, err = cache.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, tokens[1], got)
	require.Equal(t, 2, calls)
}

func TestTokenEmpty(t *testing.T) {
	t.Parallel()

	cache := NewCache(func(ctx context.Context) (string, error) {
		return "", nil
	})

	_, err := cache.Token(context.Background())
	require.ErrorIs(t, err, ErrEmptyToken)
}

func TestTokenOpaque(t *testing.T) {
	t.Parallel()

	calls := 0
	cache := NewCache(func(ctx context.Context) (string, error) {
		calls++
		return "opaque-session-token", nil
	})

	for i := 0; i < 2; i++ {
		got, err := cache.Token(context.Background())
		require.NoError(t, err)
		require.Equal(t, "opaque-session-token", got)
	}

	// Non-JWT tokens are kept, not re-requested on every call.
	require.Equal(t, 1, calls)
}
