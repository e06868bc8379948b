package storage

import (
	"context"

	"github.com/iudanet/spawnsync/internal/models"
)

//go:generate moq -out snapshotstorage_mock.go . SnapshotStorage

// SnapshotStorage defines interface for caching pulled snapshots on client
type SnapshotStorage interface {
	// SaveSnapshot stores or replaces the cached snapshot of its map
	SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error

	// GetSnapshot retrieves the cached snapshot of a map
	// Returns ErrSnapshotNotFound if nothing is cached
	GetSnapshot(ctx context.Context, mapName string) (*models.Snapshot, error)

	// ListSnapshots returns all cached snapshots ordered by map name
	ListSnapshots(ctx context.Context) ([]*models.Snapshot, error)

	// DeleteSnapshot removes the cached snapshot of a map
	// Returns ErrSnapshotNotFound if nothing is cached
	DeleteSnapshot(ctx context.Context, mapName string) error
}
