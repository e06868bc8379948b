package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client replication metadata
type MetadataStorage interface {
	// SaveLastRevision saves the revision of the last applied snapshot
	SaveLastRevision(ctx context.Context, revision int64) error

	// GetLastRevision retrieves the revision of the last applied snapshot
	// Returns 0 if no snapshot has been applied yet
	GetLastRevision(ctx context.Context) (int64, error)

	// SaveNodeID saves the node identity of this client
	SaveNodeID(ctx context.Context, nodeID string) error

	// GetNodeID retrieves the node identity; returns empty string if none saved
	GetNodeID(ctx context.Context) (string, error)
}
