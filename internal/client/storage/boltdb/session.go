package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/progressboard/internal/client/storage"
)

// Get retrieves a stored session value
func (s *Storage) Get(ctx context.Context, key storage.Key) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var value string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrKeyNotFound
		}

		// bbolt отдает память, валидную только внутри транзакции
		value = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

// Set stores a session value
func (s *Storage) Set(ctx context.Context, key storage.Key, value string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}

		return nil
	})
}

// Delete removes session values in one transaction. Absent keys are skipped,
// so repeated or concurrent logouts all succeed.
func (s *Storage) Delete(ctx context.Context, keys ...storage.Key) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return fmt.Errorf("failed to delete %s: %w", key, err)
			}
		}

		return nil
	})
}
