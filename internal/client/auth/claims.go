package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned by Claims when nothing is stored.
var ErrNoToken = errors.New("no token stored")

const hasuraClaimsKey = "https://hasura.io/jwt/claims"

// Claims is the informational subset of the stored JWT.
type Claims struct {
	ExpiresAt time.Time
	IssuedAt  time.Time
	Subject   string
	UserID    string // x-hasura-user-id, if the issuer sets it
}

// Expired reports whether the token carries an expiry that has passed.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Claims decodes the stored token without verifying its signature. The
// result is for display only and never decides authentication.
func (s *TokenStore) Claims(ctx context.Context) (*Claims, error) {
	token, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoToken
	}
	return ParseClaims(token)
}

// ParseClaims reads claims from a JWT without signature verification.
func ParseClaims(token string) (*Claims, error) {
	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mapClaims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims := &Claims{}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if sub, ok := mapClaims["sub"]; ok && sub != nil {
		claims.Subject = fmt.Sprint(sub)
	}
	if hasura, ok := mapClaims[hasuraClaimsKey].(map[string]any); ok {
		if id, ok := hasura["x-hasura-user-id"]; ok && id != nil {
			claims.UserID = fmt.Sprint(id)
		}
	}

	return claims, nil
}
