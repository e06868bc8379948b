package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/spawnsync/internal/client/storage"
	"github.com/iudanet/spawnsync/internal/models"
)

func newSnapshot(mapName string, revision int64) *models.Snapshot {
	return &models.Snapshot{
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		ID:        "snap-" + mapName,
		MapName:   mapName,
		NodeID:    "host-1",
		Checksum:  "sum",
		Data:      []byte(`{"spawners":[]}`),
		Revision:  revision,
	}
}

func TestStorage_SaveGetSnapshot(t *testing.T) {
	ctx := context.Background()
	store := openTestStorage(t)

	_, err := store.GetSnapshot(ctx, "Skeld")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	snap := newSnapshot("Skeld", 3)
	require.NoError(t, store.SaveSnapshot(ctx, snap))

	got, err := store.GetSnapshot(ctx, "Skeld")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	// Повторное сохранение заменяет снимок карты
	newer := newSnapshot("Skeld", 4)
	newer.Data = []byte(`{"spawners":[{"spawner_kind":"Luggage"}]}`)
	require.NoError(t, store.SaveSnapshot(ctx, newer))

	got, err = store.GetSnapshot(ctx, "Skeld")
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Revision)
	assert.Equal(t, newer.Data, got.Data)
}

func TestStorage_SaveSnapshot_EmptyMap(t *testing.T) {
	store := openTestStorage(t)

	err := store.SaveSnapshot(context.Background(), newSnapshot("", 1))
	assert.Error(t, err)
}

func TestStorage_ListSnapshots(t *testing.T) {
	ctx := context.Background()
	store := openTestStorage(t)

	list, err := store.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, name := range []string{"Polus", "Airship", "Skeld"} {
		require.NoError(t, store.SaveSnapshot(ctx, newSnapshot(name, 1)))
	}

	list, err = store.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Airship", list[0].MapName)
	assert.Equal(t, "Polus", list[1].MapName)
	assert.Equal(t, "Skeld", list[2].MapName)
}

func TestStorage_DeleteSnapshot(t *testing.T) {
	ctx := context.Background()
	store := openTestStorage(t)

	assert.ErrorIs(t, store.DeleteSnapshot(ctx, "Skeld"), storage.ErrSnapshotNotFound)

	require.NoError(t, store.SaveSnapshot(ctx, newSnapshot("Skeld", 1)))
	require.NoError(t, store.DeleteSnapshot(ctx, "Skeld"))

	_, err := store.GetSnapshot(ctx, "Skeld")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
}

func TestStorage_Snapshots_Closed(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.SaveSnapshot(ctx, newSnapshot("Skeld", 1)), storage.ErrStorageClosed)
	_, err = store.GetSnapshot(ctx, "Skeld")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	_, err = store.ListSnapshots(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.DeleteSnapshot(ctx, "Skeld"), storage.ErrStorageClosed)
}
