package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/spawnsync/internal/checksum"
	"github.com/iudanet/spawnsync/internal/codec"
	"github.com/iudanet/spawnsync/internal/models"
	"github.com/iudanet/spawnsync/internal/server/storage"
	"github.com/iudanet/spawnsync/internal/validation"
	"github.com/iudanet/spawnsync/pkg/api"
)

const (
	// maxSnapshotBody ограничение размера тела публикации
	maxSnapshotBody = 8 << 20
	// defaultHistoryLimit количество снимков в истории по умолчанию
	defaultHistoryLimit = 20
	// maxHistoryLimit максимальное количество снимков в истории
	maxHistoryLimit = 100
)

// SnapshotHandler обрабатывает публикацию и получение таблиц спавна
type SnapshotHandler struct {
	logger  *slog.Logger
	storage storage.SnapshotStorage
	codec   *codec.Codec
	keep    int
}

// NewSnapshotHandler создает новый handler снимков.
// keep задает число хранимых снимков на карту; 0 отключает очистку.
func NewSnapshotHandler(logger *slog.Logger, snapshotStorage storage.SnapshotStorage, keep int) *SnapshotHandler {
	return &SnapshotHandler{
		logger:  logger,
		storage: snapshotStorage,
		codec:   codec.New(logger),
		keep:    keep,
	}
}

// PushSnapshot обрабатывает POST /api/v1/snapshots
func (h *SnapshotHandler) PushSnapshot(w http.ResponseWriter, r *http.Request) {
	nodeID, ok := GetNodeID(r.Context())
	if !ok {
		h.logger.Error("node_id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.PushSnapshotRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSnapshotBody)).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode push request", "error", err)
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateMapName(req.MapName); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Revision <= 0 {
		sendError(h.logger, w, "revision must be positive", http.StatusBadRequest)
		return
	}

	if err := checksum.Verify(req.Table, req.Checksum); err != nil {
		h.logger.Warn("Snapshot checksum rejected",
			"node_id", nodeID,
			"map", req.MapName,
			"error", err)
		sendError(h.logger, w, "checksum does not match table", http.StatusBadRequest)
		return
	}

	// Таблица должна декодироваться, иначе клиенты не смогут ее применить
	table, err := h.codec.Decode(req.Table)
	if err != nil {
		h.logger.Warn("Snapshot table rejected",
			"node_id", nodeID,
			"map", req.MapName,
			"error", err)
		sendError(h.logger, w, "table is not a valid spawn table", http.StatusBadRequest)
		return
	}

	snapshot := &models.Snapshot{
		MapName:   req.MapName,
		NodeID:    nodeID,
		Checksum:  req.Checksum,
		Data:      req.Table,
		Revision:  req.Revision,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.storage.SaveSnapshot(r.Context(), snapshot); err != nil {
		if errors.Is(err, storage.ErrStaleRevision) {
			sendError(h.logger, w, "a newer snapshot of this map already exists", http.StatusConflict)
			return
		}
		h.logger.Error("Failed to save snapshot", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Snapshot published",
		"node_id", nodeID,
		"map", req.MapName,
		"revision", req.Revision,
		"spawners", table.Len(),
		"items", table.ItemCount())

	if h.keep > 0 {
		deleted, err := h.storage.PruneSnapshots(r.Context(), req.MapName, h.keep)
		if err != nil {
			// Публикация уже сохранена, ошибка очистки не влияет на ответ
			h.logger.Warn("Failed to prune snapshots", "map", req.MapName, "error", err)
		} else if deleted > 0 {
			h.logger.Debug("Old snapshots pruned", "map", req.MapName, "deleted", deleted)
		}
	}

	sendJSON(h.logger, w, toResponse(snapshot, false), http.StatusCreated)
}

// GetLatest обрабатывает GET /api/v1/snapshots/{map}
func (h *SnapshotHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	mapName := r.PathValue("map")
	if err := validation.ValidateMapName(mapName); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	snapshot, err := h.storage.GetLatestSnapshot(r.Context(), mapName)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	sendJSON(h.logger, w, toResponse(snapshot, true), http.StatusOK)
}

// GetByID обрабатывает GET /api/v1/archive/{id}
func (h *SnapshotHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "snapshot id is required", http.StatusBadRequest)
		return
	}

	snapshot, err := h.storage.GetSnapshot(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	sendJSON(h.logger, w, toResponse(snapshot, true), http.StatusOK)
}

// History обрабатывает GET /api/v1/snapshots/{map}/history?limit=N
func (h *SnapshotHandler) History(w http.ResponseWriter, r *http.Request) {
	mapName := r.PathValue("map")
	if err := validation.ValidateMapName(mapName); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			sendError(h.logger, w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(parsed, maxHistoryLimit)
	}

	snapshots, err := h.storage.ListSnapshots(r.Context(), mapName, limit)
	if err != nil {
		h.logger.Error("Failed to list snapshots", "map", mapName, "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.SnapshotListResponse{
		MapName:   mapName,
		Snapshots: make([]api.SnapshotResponse, 0, len(snapshots)),
	}
	for _, s := range snapshots {
		resp.Snapshots = append(resp.Snapshots, toResponse(s, false))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// ListMaps обрабатывает GET /api/v1/maps
func (h *SnapshotHandler) ListMaps(w http.ResponseWriter, r *http.Request) {
	maps, err := h.storage.ListMaps(r.Context())
	if err != nil {
		h.logger.Error("Failed to list maps", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if maps == nil {
		maps = []string{}
	}

	sendJSON(h.logger, w, api.MapListResponse{Maps: maps}, http.StatusOK)
}

func (h *SnapshotHandler) writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrSnapshotNotFound) {
		sendError(h.logger, w, "snapshot not found", http.StatusNotFound)
		return
	}
	h.logger.Error("Failed to get snapshot", "error", err)
	sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
}

// toResponse конвертирует снимок в API ответ; withTable добавляет тело таблицы
func toResponse(s *models.Snapshot, withTable bool) api.SnapshotResponse {
	resp := api.SnapshotResponse{
		CreatedAt: s.CreatedAt,
		ID:        s.ID,
		MapName:   s.MapName,
		NodeID:    s.NodeID,
		Checksum:  s.Checksum,
		Revision:  s.Revision,
	}
	if withTable {
		resp.Table = json.RawMessage(s.Data)
	}
	return resp
}
