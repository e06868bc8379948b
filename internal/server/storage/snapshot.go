package storage

import (
	"context"

	"github.com/iudanet/spawnsync/internal/models"
)

//go:generate moq -out snapshot_mock.go . SnapshotStorage

// SnapshotStorage defines interface for the server snapshot archive
type SnapshotStorage interface {
	// SaveSnapshot archives a snapshot
	// Returns ErrStaleRevision if the latest archived snapshot of the map is not older
	SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error

	// GetLatestSnapshot retrieves the newest snapshot of a map
	// Returns ErrSnapshotNotFound if the map has no snapshots
	GetLatestSnapshot(ctx context.Context, mapName string) (*models.Snapshot, error)

	// GetSnapshot retrieves a snapshot by ID
	// Returns ErrSnapshotNotFound if snapshot doesn't exist
	GetSnapshot(ctx context.Context, id string) (*models.Snapshot, error)

	// ListSnapshots returns archived snapshots of a map, newest first, at most limit entries
	// Returns empty slice if no snapshots found
	ListSnapshots(ctx context.Context, mapName string, limit int) ([]*models.Snapshot, error)

	// ListMaps returns names of all maps that have snapshots, sorted
	ListMaps(ctx context.Context) ([]string, error)

	// PruneSnapshots keeps the newest keep snapshots of a map and deletes the rest
	// Returns number of deleted snapshots
	PruneSnapshots(ctx context.Context, mapName string, keep int) (int, error)
}
