package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/progressboard/internal/client/storage"
)

func TestNew_CreatesPrivateFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "progressboard.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	// В файле лежит токен, поэтому доступ только владельцу
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	err = store.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketSession) == nil {
			return os.ErrNotExist
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	invalidPath := filepath.Join(t.TempDir(), "missing-dir", "progressboard.db")

	store, err := New(context.Background(), invalidPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open boltdb")
	assert.Nil(t, store)
}

func TestNew_LockedByAnotherHandle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "progressboard.db")

	first, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, first.Close())
	})

	// Второй экземпляр клиента не должен зависнуть на заблокированном файле
	second, err := New(context.Background(), dbPath)
	require.ErrorIs(t, err, bbolt.ErrTimeout)
	assert.Nil(t, second)
}

func TestNew_KeepsExistingSession(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "progressboard.db")

	db, err := bbolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucket(bucketSession)
		if err != nil {
			return err
		}
		return b.Put([]byte(storage.KeyUserID), []byte("42"))
	}))
	require.NoError(t, db.Close())

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	got, err := store.Get(ctx, storage.KeyUserID)
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}

func TestClose_Twice(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "progressboard.db"))
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Nil(t, store.db)
	require.NoError(t, store.Close())
}
