package api

import (
	"encoding/json"
	"time"
)

// PushSnapshotRequest представляет публикацию таблицы спавна хостом
type PushSnapshotRequest struct {
	MapName  string          `json:"map_name"` // карта, для которой записана таблица
	Checksum string          `json:"checksum"` // BLAKE2b-256 от Table (hex)
	Table    json.RawMessage `json:"table"`    // закодированная таблица спавна
	Revision int64           `json:"revision"` // Lamport timestamp публикации
}

// SnapshotResponse представляет опубликованный снимок
type SnapshotResponse struct {
	CreatedAt time.Time       `json:"created_at"`
	ID        string          `json:"id"`
	MapName   string          `json:"map_name"`
	NodeID    string          `json:"node_id"`
	Checksum  string          `json:"checksum"`
	Table     json.RawMessage `json:"table,omitempty"`
	Revision  int64           `json:"revision"`
}

// SnapshotListResponse представляет историю снимков карты (без тел таблиц)
type SnapshotListResponse struct {
	MapName   string             `json:"map_name"`
	Snapshots []SnapshotResponse `json:"snapshots"`
}

// MapListResponse представляет список карт, для которых есть снимки
type MapListResponse struct {
	Maps []string `json:"maps"`
}
