package boltdb

import (
	"context"
	"errors"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/spawnsync/internal/client/storage"
)

var keyCurrentAuth = []byte("current")

// SaveAuth replaces the stored access token
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	return s.update(bucketAuth, func(b *bbolt.Bucket) error {
		return putJSON(b, keyCurrentAuth, auth)
	})
}

// GetAuth returns the stored access token or storage.ErrAuthNotFound
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	auth := &storage.AuthData{}
	err := s.view(bucketAuth, func(b *bbolt.Bucket) error {
		found, err := getJSON(b, keyCurrentAuth, auth)
		if err == nil && !found {
			return storage.ErrAuthNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return auth, nil
}

// DeleteAuth forgets the stored access token
func (s *Storage) DeleteAuth(ctx context.Context) error {
	return s.update(bucketAuth, func(b *bbolt.Bucket) error {
		if b.Get(keyCurrentAuth) == nil {
			return storage.ErrAuthNotFound
		}
		return b.Delete(keyCurrentAuth)
	})
}

// IsAuthenticated reports whether a non-expired token is stored
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	auth, err := s.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return !auth.IsExpired(time.Now()), nil
}
