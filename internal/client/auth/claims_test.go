package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/progressboard/internal/client/storage/memory"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	iat := time.Now().Add(-time.Minute).Truncate(time.Second)

	token := signTestToken(t, jwt.MapClaims{
		"sub": "1234",
		"exp": exp.Unix(),
		"iat": iat.Unix(),
		hasuraClaimsKey: map[string]any{
			"x-hasura-user-id": "1234",
		},
	})

	claims, err := ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "1234", claims.Subject)
	assert.Equal(t, "1234", claims.UserID)
	assert.True(t, claims.ExpiresAt.Equal(exp))
	assert.True(t, claims.IssuedAt.Equal(iat))
	assert.False(t, claims.Expired(time.Now()))
	assert.True(t, claims.Expired(exp.Add(time.Second)))
}

func TestParseClaims_NoExpiry(t *testing.T) {
	claims, err := ParseClaims(signTestToken(t, jwt.MapClaims{"sub": "7"}))
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.IsZero())
	assert.False(t, claims.Expired(time.Now()))
	assert.Empty(t, claims.UserID)
}

func TestParseClaims_Malformed(t *testing.T) {
	_, err := ParseClaims("not-a-jwt")
	assert.Error(t, err)
}

func TestTokenStore_Claims(t *testing.T) {
	ctx := context.Background()
	store := NewTokenStore(memory.New())

	_, err := store.Claims(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Store(ctx, signTestToken(t, jwt.MapClaims{"sub": "99"})))
	claims, err := store.Claims(ctx)
	require.NoError(t, err)
	assert.Equal(t, "99", claims.Subject)
}
