package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no access token is stored
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrSnapshotNotFound indicates that no snapshot is cached for the map
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
