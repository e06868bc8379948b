package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/spawnsync/internal/client/storage"
)

// openTestStorage открывает кэш во временном каталоге и закрывает его после теста
func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestNew_CreatesBucketsAndFormat(t *testing.T) {
	store := openTestStorage(t)

	err := store.db.View(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketSnapshots, bucketMetadata} {
			assert.NotNil(t, tx.Bucket(name), "bucket %s", name)
		}
		format, ok := getUint(tx.Bucket(bucketMetadata), keyCacheFormat)
		assert.True(t, ok)
		assert.Equal(t, cacheFormat, format)
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "cache.db"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNew_ResetsSnapshotsOfOldFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.SaveSnapshot(ctx, newSnapshot("Skeld", 2)))
	require.NoError(t, store.SaveNodeID(ctx, "node-1"))
	require.NoError(t, store.db.Update(func(tx *bbolt.Tx) error {
		return putUint(tx.Bucket(bucketMetadata), keyCacheFormat, cacheFormat+1)
	}))
	require.NoError(t, store.Close())

	store, err = New(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.GetSnapshot(ctx, "Skeld")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	// Идентичность узла не относится к кэшу снимков и сохраняется
	nodeID, err := store.GetNodeID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "node-1", nodeID)
}

func TestNew_KeepsSnapshotsOfCurrentFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.SaveSnapshot(ctx, newSnapshot("Skeld", 2)))
	require.NoError(t, store.Close())

	store, err = New(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.GetSnapshot(ctx, "Skeld")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Revision)
}

func TestNew_LockedByAnotherHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := New(context.Background(), path)
	require.NoError(t, err)
	defer store.Close()

	_, err = New(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in use by another process")
}

func TestClose_Idempotent(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Nil(t, store.db)
	assert.NoError(t, store.Close())
}

func TestBucketMissing(t *testing.T) {
	ctx := context.Background()
	store := openTestStorage(t)

	require.NoError(t, store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketAuth)
	}))

	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, ErrBucketNotFound)
	assert.ErrorIs(t, store.SaveAuth(ctx, &storage.AuthData{Role: "host"}), ErrBucketNotFound)
	assert.ErrorIs(t, store.DeleteAuth(ctx), ErrBucketNotFound)
}
