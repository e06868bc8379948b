package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MemoryDatabase(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, s.Ping(ctx))

	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestNew_ReopenKeepsArchive(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "archive.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.SaveSnapshot(ctx, newSnapshot("Skeld", 3, "node-host")))
	require.NoError(t, s.Close())

	// Повторное открытие не применяет миграции заново и видит данные
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer s.Close()

	latest, err := s.GetLatestSnapshot(ctx, "Skeld")
	require.NoError(t, err)
	assert.Equal(t, int64(3), latest.Revision)

	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestNew_InvalidPath(t *testing.T) {
	_, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "archive.db"))
	assert.Error(t, err)
}

func TestPing_Closed(t *testing.T) {
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Error(t, s.Ping(context.Background()))
}
