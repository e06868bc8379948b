package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	keyLastRevision = []byte("last_revision")
	keyNodeID       = []byte("node_id")
)

// SaveLastRevision saves the Lamport revision the node has reached
func (s *Storage) SaveLastRevision(ctx context.Context, revision int64) error {
	if revision < 0 {
		return fmt.Errorf("revision must not be negative: %d", revision)
	}
	return s.update(bucketMetadata, func(b *bbolt.Bucket) error {
		return putUint(b, keyLastRevision, uint64(revision))
	})
}

// GetLastRevision returns the saved revision, 0 before the first snapshot
func (s *Storage) GetLastRevision(ctx context.Context) (int64, error) {
	var revision int64
	err := s.view(bucketMetadata, func(b *bbolt.Bucket) error {
		if v, ok := getUint(b, keyLastRevision); ok {
			revision = int64(v)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get last revision: %w", err)
	}
	return revision, nil
}

// SaveNodeID saves the node identity of this client
func (s *Storage) SaveNodeID(ctx context.Context, nodeID string) error {
	if nodeID == "" {
		return fmt.Errorf("node id cannot be empty")
	}
	return s.update(bucketMetadata, func(b *bbolt.Bucket) error {
		return b.Put(keyNodeID, []byte(nodeID))
	})
}

// GetNodeID returns the node identity or "" on first run
func (s *Storage) GetNodeID(ctx context.Context) (string, error) {
	var nodeID string
	err := s.view(bucketMetadata, func(b *bbolt.Bucket) error {
		nodeID = string(b.Get(keyNodeID))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get node id: %w", err)
	}
	return nodeID, nil
}
