package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/iudanet/progressboard/internal/client/storage"
	"github.com/iudanet/progressboard/pkg/api"
)

// TokenWrapper is the object shape a credential may arrive in: {"token": "..."}.
type TokenWrapper = api.SignInResponse

// TokenStore keeps the bearer credential and the derived user id in
// SessionStorage. It is the only component that writes the credential.
type TokenStore struct {
	storage storage.SessionStorage
}

// NewTokenStore creates a TokenStore on top of storage.
func NewTokenStore(s storage.SessionStorage) *TokenStore {
	return &TokenStore{storage: s}
}

// Store persists the credential carried by data: a raw string or []byte, a
// TokenWrapper (value or pointer) or a map with a "token" key. If no usable
// token can be extracted the call is logged and ignored; prior state stays.
// Only storage failures are returned.
func (s *TokenStore) Store(ctx context.Context, data any) error {
	token, ok := NormalizeToken(data)
	if !ok {
		slog.Warn("no valid token found, keeping previous credential", "type", fmt.Sprintf("%T", data))
		return nil
	}

	if err := s.storage.Set(ctx, storage.KeyToken, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	slog.Debug("token stored")
	return nil
}

// NormalizeToken extracts the credential from the accepted shapes.
func NormalizeToken(data any) (string, bool) {
	var token string
	switch v := data.(type) {
	case nil:
		return "", false
	case string:
		token = v
	case []byte:
		token = string(v)
	case TokenWrapper:
		token = v.Token
	case *TokenWrapper:
		if v == nil {
			return "", false
		}
		token = v.Token
	case map[string]any:
		s, isString := v["token"].(string)
		if !isString {
			return "", false
		}
		token = s
	case map[string]string:
		token = v["token"]
	default:
		return "", false
	}

	if token == "" {
		return "", false
	}
	return token, true
}

// Get returns the stored credential or "" when there is none.
func (s *TokenStore) Get(ctx context.Context) (string, error) {
	return s.getValue(ctx, storage.KeyToken)
}

// IsAuthenticated reports whether a non-empty credential is stored. The token
// is not validated: an expired token counts until a request fails.
func (s *TokenStore) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// Clear removes the credential together with the cached user id. Safe to call
// repeatedly and from concurrent failure handlers.
func (s *TokenStore) Clear(ctx context.Context) error {
	slog.Debug("clearing token")
	if err := s.storage.Delete(ctx, storage.KeyToken, storage.KeyUserID); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// UserID returns the cached user id as stored, or "" when absent.
func (s *TokenStore) UserID(ctx context.Context) (string, error) {
	return s.getValue(ctx, storage.KeyUserID)
}

// SetUserID caches the resolved user id.
func (s *TokenStore) SetUserID(ctx context.Context, id int64) error {
	if err := s.storage.Set(ctx, storage.KeyUserID, strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("failed to store user id: %w", err)
	}
	return nil
}

// ClearUserID removes only the cached user id.
func (s *TokenStore) ClearUserID(ctx context.Context) error {
	if err := s.storage.Delete(ctx, storage.KeyUserID); err != nil {
		return fmt.Errorf("failed to clear user id: %w", err)
	}
	return nil
}

// Flag reports whether a boolean marker key is set to "true".
func (s *TokenStore) Flag(ctx context.Context, key storage.Key) (bool, error) {
	v, err := s.getValue(ctx, key)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// SetFlag sets or removes a boolean marker key.
func (s *TokenStore) SetFlag(ctx context.Context, key storage.Key, on bool) error {
	var err error
	if on {
		err = s.storage.Set(ctx, key, "true")
	} else {
		err = s.storage.Delete(ctx, key)
	}
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", key, err)
	}
	return nil
}

func (s *TokenStore) getValue(ctx context.Context, key storage.Key) (string, error) {
	v, err := s.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return v, nil
}
