package storage

import "errors"

// Common storage errors
var (
	// ErrSnapshotNotFound indicates that no snapshot matches the request
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrStaleRevision indicates that a newer or equal snapshot of the map is already archived
	ErrStaleRevision = errors.New("snapshot revision is stale")
)
