package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/spawnsync/internal/models"
	"github.com/iudanet/spawnsync/internal/server/storage"
)

const snapshotColumns = `id, map_name, node_id, revision, checksum, data, created_at`

// SaveSnapshot archives a snapshot
// Returns ErrStaleRevision if the latest archived snapshot of the map is not older
func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Проверяем последнюю ревизию карты в той же транзакции
	latest, err := scanSnapshot(tx.QueryRowContext(ctx, `
		SELECT `+snapshotColumns+`
		FROM snapshots
		WHERE map_name = ?
		ORDER BY revision DESC, node_id DESC
		LIMIT 1
	`, snapshot.MapName))
	if err != nil && !errors.Is(err, storage.ErrSnapshotNotFound) {
		return fmt.Errorf("failed to check latest snapshot: %w", err)
	}
	if latest != nil && !snapshot.IsNewerThan(latest) {
		return storage.ErrStaleRevision
	}

	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (`+snapshotColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		snapshot.ID,
		snapshot.MapName,
		snapshot.NodeID,
		snapshot.Revision,
		snapshot.Checksum,
		snapshot.Data,
		snapshot.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}

// GetLatestSnapshot retrieves the newest snapshot of a map
func (s *Storage) GetLatestSnapshot(ctx context.Context, mapName string) (*models.Snapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM snapshots
		WHERE map_name = ?
		ORDER BY revision DESC, node_id DESC
		LIMIT 1
	`

	snapshot, err := scanSnapshot(s.db.QueryRowContext(ctx, query, mapName))
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// GetSnapshot retrieves a snapshot by ID
func (s *Storage) GetSnapshot(ctx context.Context, id string) (*models.Snapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM snapshots
		WHERE id = ?
	`

	snapshot, err := scanSnapshot(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ListSnapshots returns archived snapshots of a map, newest first
func (s *Storage) ListSnapshots(ctx context.Context, mapName string, limit int) ([]*models.Snapshot, error) {
	if limit <= 0 {
		limit = -1 // SQLite: без ограничения
	}

	query := `
		SELECT ` + snapshotColumns + `
		FROM snapshots
		WHERE map_name = ?
		ORDER BY revision DESC, node_id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, mapName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	snapshots := make([]*models.Snapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots: %w", err)
	}

	return snapshots, nil
}

// ListMaps returns names of all maps that have snapshots
func (s *Storage) ListMaps(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT map_name FROM snapshots ORDER BY map_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query maps: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	maps := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan map name: %w", err)
		}
		maps = append(maps, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating maps: %w", err)
	}

	return maps, nil
}

// PruneSnapshots keeps the newest keep snapshots of a map and deletes the rest
func (s *Storage) PruneSnapshots(ctx context.Context, mapName string, keep int) (int, error) {
	if keep < 0 {
		return 0, fmt.Errorf("keep must not be negative")
	}

	query := `
		DELETE FROM snapshots
		WHERE map_name = ? AND id NOT IN (
			SELECT id FROM snapshots
			WHERE map_name = ?
			ORDER BY revision DESC, node_id DESC
			LIMIT ?
		)
	`

	result, err := s.db.ExecContext(ctx, query, mapName, mapName, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return int(deleted), nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{}
	var createdAt int64

	err := row.Scan(
		&snapshot.ID,
		&snapshot.MapName,
		&snapshot.NodeID,
		&snapshot.Revision,
		&snapshot.Checksum,
		&snapshot.Data,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to scan snapshot: %w", err)
	}

	snapshot.CreatedAt = unixToTime(createdAt)
	return snapshot, nil
}

func unixToTime(timestamp int64) time.Time {
	return time.Unix(timestamp, 0)
}
