package storage

import (
	"context"
)

//go:generate moq -out session_mock.go . SessionStorage

// Key names a persisted piece of client session state.
type Key string

// Recognized session keys.
const (
	// KeyToken holds the bearer credential.
	KeyToken Key = "jwt_token"
	// KeyUserID caches the resolved user id so the id lookup can be skipped.
	KeyUserID Key = "current_user_id"
	// KeyFetchLevel is set at login and cleared once a level value is obtained.
	KeyFetchLevel Key = "fetch_level_data"
	// KeyLoggedOut marks an explicit logout; it overrides a still-present token.
	KeyLoggedOut Key = "logged_out"
)

// AllKeys lists every recognized key.
var AllKeys = []Key{KeyToken, KeyUserID, KeyFetchLevel, KeyLoggedOut}

// SessionStorage defines interface for persisting client session state.
// This is the lowest layer: plain key/value strings, no interpretation.
type SessionStorage interface {
	// Get returns the stored value.
	// Returns ErrKeyNotFound if the key is absent
	Get(ctx context.Context, key Key) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key Key, value string) error

	// Delete removes keys. Missing keys are not an error
	Delete(ctx context.Context, keys ...Key) error
}
