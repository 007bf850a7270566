package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/progressboard/internal/client/storage"
	"github.com/iudanet/progressboard/internal/client/storage/memory"
)

// failingStorage возвращает ошибку на любую операцию
func failingStorage(err error) *storage.SessionStorageMock {
	return &storage.SessionStorageMock{
		GetFunc: func(ctx context.Context, key storage.Key) (string, error) {
			return "", err
		},
		SetFunc: func(ctx context.Context, key storage.Key, value string) error {
			return err
		},
		DeleteFunc: func(ctx context.Context, keys ...storage.Key) error {
			return err
		},
	}
}

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		data   any
		name   string
		want   string
		wantOK bool
	}{
		{name: "raw string", data: "abc.def.ghi", want: "abc.def.ghi", wantOK: true},
		{name: "bytes", data: []byte("xyz"), want: "xyz", wantOK: true},
		{name: "wrapper", data: TokenWrapper{Token: "w"}, want: "w", wantOK: true},
		{name: "wrapper pointer", data: &TokenWrapper{Token: "p"}, want: "p", wantOK: true},
		{name: "map", data: map[string]any{"token": "m"}, want: "m", wantOK: true},
		{name: "string map", data: map[string]string{"token": "s"}, want: "s", wantOK: true},
		{name: "nil", data: nil, wantOK: false},
		{name: "nil wrapper pointer", data: (*TokenWrapper)(nil), wantOK: false},
		{name: "empty string", data: "", wantOK: false},
		{name: "map without token", data: map[string]any{"jwt": "x"}, wantOK: false},
		{name: "map with non-string token", data: map[string]any{"token": 42}, wantOK: false},
		{name: "unsupported type", data: 42, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeToken(tt.data)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenStore_StoreGet(t *testing.T) {
	ctx := context.Background()

	for _, data := range []any{"tok", TokenWrapper{Token: "tok"}, map[string]any{"token": "tok"}} {
		store := NewTokenStore(memory.New())
		require.NoError(t, store.Store(ctx, data))

		got, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", got)
	}
}

func TestTokenStore_StoreUnusableKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	store := NewTokenStore(memory.New())

	require.NoError(t, store.Store(ctx, "first"))
	require.NoError(t, store.Store(ctx, nil))
	require.NoError(t, store.Store(ctx, map[string]any{"nope": true}))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestTokenStore_StoreUnusableOnEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := NewTokenStore(memory.New())

	require.NoError(t, store.Store(ctx, ""))

	isAuth, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, isAuth)
}

func TestTokenStore_IsAuthenticated(t *testing.T) {
	ctx := context.Background()
	store := NewTokenStore(memory.New())

	isAuth, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, isAuth)

	// Даже явно невалидный токен считается "аутентифицированным"
	require.NoError(t, store.Store(ctx, "expired-or-garbage"))
	isAuth, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, isAuth)
}

func TestTokenStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewTokenStore(memory.New())

	require.NoError(t, store.Store(ctx, "tok"))
	require.NoError(t, store.SetUserID(ctx, 42))

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	id, err := store.UserID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestTokenStore_UserIDAndFlags(t *testing.T) {
	ctx := context.Background()
	store := NewTokenStore(memory.New())

	require.NoError(t, store.SetUserID(ctx, 1234))
	id, err := store.UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1234", id)

	on, err := store.Flag(ctx, storage.KeyFetchLevel)
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, store.SetFlag(ctx, storage.KeyFetchLevel, true))
	on, err = store.Flag(ctx, storage.KeyFetchLevel)
	require.NoError(t, err)
	assert.True(t, on)

	require.NoError(t, store.SetFlag(ctx, storage.KeyFetchLevel, false))
	require.NoError(t, store.SetFlag(ctx, storage.KeyFetchLevel, false))
	on, err = store.Flag(ctx, storage.KeyFetchLevel)
	require.NoError(t, err)
	assert.False(t, on)
}

func TestTokenStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")
	mock := failingStorage(boom)
	store := NewTokenStore(mock)

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = store.IsAuthenticated(ctx)
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, store.Store(ctx, "tok"), boom)
	assert.ErrorIs(t, store.Clear(ctx), boom)
	assert.ErrorIs(t, store.SetUserID(ctx, 1), boom)
	assert.ErrorIs(t, store.SetFlag(ctx, storage.KeyLoggedOut, true), boom)

	assert.NotEmpty(t, mock.GetCalls())
	assert.NotEmpty(t, mock.DeleteCalls())
}
