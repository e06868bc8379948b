package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/spawnsync/internal/client/storage"
	"github.com/iudanet/spawnsync/internal/models"
)

// SaveSnapshot кэширует снимок; ключ - имя карты, предыдущий снимок заменяется
func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	if snapshot == nil || snapshot.MapName == "" {
		return fmt.Errorf("snapshot map name cannot be empty")
	}
	return s.update(bucketSnapshots, func(b *bbolt.Bucket) error {
		return putJSON(b, []byte(snapshot.MapName), snapshot)
	})
}

// GetSnapshot возвращает кэшированный снимок карты или storage.ErrSnapshotNotFound
func (s *Storage) GetSnapshot(ctx context.Context, mapName string) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{}
	err := s.view(bucketSnapshots, func(b *bbolt.Bucket) error {
		found, err := getJSON(b, []byte(mapName), snapshot)
		if err == nil && !found {
			return storage.ErrSnapshotNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ListSnapshots возвращает все кэшированные снимки.
// Ключи bbolt отсортированы, поэтому порядок совпадает с порядком имен карт.
func (s *Storage) ListSnapshots(ctx context.Context) ([]*models.Snapshot, error) {
	snapshots := make([]*models.Snapshot, 0)
	err := s.view(bucketSnapshots, func(b *bbolt.Bucket) error {
		return b.ForEach(func(k, _ []byte) error {
			snapshot := &models.Snapshot{}
			if _, err := getJSON(b, k, snapshot); err != nil {
				return err
			}
			snapshots = append(snapshots, snapshot)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

// DeleteSnapshot удаляет кэшированный снимок карты
func (s *Storage) DeleteSnapshot(ctx context.Context, mapName string) error {
	return s.update(bucketSnapshots, func(b *bbolt.Bucket) error {
		if b.Get([]byte(mapName)) == nil {
			return storage.ErrSnapshotNotFound
		}
		return b.Delete([]byte(mapName))
	})
}
