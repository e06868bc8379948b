// Package replication передает таблицы спавна между хостом и клиентами через сервер синхронизации.
package replication

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/spawnsync/internal/checksum"
	httpClient "github.com/iudanet/spawnsync/internal/client/api"
	"github.com/iudanet/spawnsync/internal/client/storage"
	"github.com/iudanet/spawnsync/internal/models"
	"github.com/iudanet/spawnsync/internal/revision"
	"github.com/iudanet/spawnsync/internal/session"
	"github.com/iudanet/spawnsync/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс репликации таблиц спавна
type Service interface {
	// Login получает токен доступа для узла и сохраняет его локально
	Login(ctx context.Context, role, hostKey string) error

	// Logout удаляет сохраненный токен
	Logout(ctx context.Context) error

	// Publish публикует текущую таблицу сессии как снимок карты (только host)
	Publish(ctx context.Context, mapName string) (*PublishResult, error)

	// Pull получает последний снимок карты с сервера и устанавливает его в сессию
	Pull(ctx context.Context, mapName string, lockAfter bool) (*PullResult, error)

	// ApplyCached устанавливает в сессию снимок карты из локального кэша, без сервера
	ApplyCached(ctx context.Context, mapName string, lockAfter bool) (*PullResult, error)

	// History возвращает историю снимков карты на сервере
	History(ctx context.Context, mapName string, limit int) ([]api.SnapshotResponse, error)

	// RemoteMaps возвращает карты, для которых на сервере есть снимки
	RemoteMaps(ctx context.Context) ([]string, error)

	// Status возвращает состояние узла
	Status(ctx context.Context) (*Status, error)
}

// PublishResult результат публикации
type PublishResult struct {
	SnapshotID string
	Revision   int64
	Spawners   int
	Items      int
	Retried    bool // Retried публикация повторена после конфликта ревизий
}

// PullResult результат получения снимка
type PullResult struct {
	SnapshotID string
	NodeID     string // NodeID хост, опубликовавший снимок
	Revision   int64
	Spawners   int
	Matched    int
	Applied    bool // Applied false, если сессия уже воспроизводит эту ревизию
	Locked     bool
}

// Status состояние узла
type Status struct {
	TokenExpiresAt time.Time
	NodeID         string
	Role           string
	CachedMaps     []string
	SessionState   session.State
	Revision       int64
	Matched        int
	Authenticated  bool
}

type service struct {
	apiClient       httpClient.ClientAPI
	session         *session.Session
	snapshotStorage storage.SnapshotStorage
	metadataStorage storage.MetadataStorage
	authStorage     storage.AuthStorage
	clock           *revision.Clock
	logger          *slog.Logger
	now             func() time.Time
	// applied последний снимок, установленный в сессию через Pull/ApplyCached
	applied struct {
		nodeID     string
		revision   int64
		generation uint64
	}
	mu sync.Mutex
}

// NewService создает сервис репликации
func NewService(
	apiClient httpClient.ClientAPI,
	sess *session.Session,
	snapshotStorage storage.SnapshotStorage,
	metadataStorage storage.MetadataStorage,
	authStorage storage.AuthStorage,
	clock *revision.Clock,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient:       apiClient,
		session:         sess,
		snapshotStorage: snapshotStorage,
		metadataStorage: metadataStorage,
		authStorage:     authStorage,
		clock:           clock,
		logger:          logger,
		now:             time.Now,
	}
}

// LoadClock восстанавливает часы ревизий узла из metadata storage.
// При первом запуске генерирует и сохраняет новый node_id.
func LoadClock(ctx context.Context, metadataStorage storage.MetadataStorage) (*revision.Clock, error) {
	nodeID, err := metadataStorage.GetNodeID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get node id: %w", err)
	}

	var clock *revision.Clock
	if nodeID == "" {
		clock = revision.New()
		if err := metadataStorage.SaveNodeID(ctx, clock.NodeID()); err != nil {
			return nil, fmt.Errorf("failed to save node id: %w", err)
		}
	} else {
		clock = revision.NewWithNodeID(nodeID)
	}

	last, err := metadataStorage.GetLastRevision(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get last revision: %w", err)
	}
	clock.Restore(last)

	return clock, nil
}

// Login получает токен доступа для узла
func (s *service) Login(ctx context.Context, role, hostKey string) error {
	resp, err := s.apiClient.RequestToken(ctx, api.TokenRequest{
		Role:    role,
		NodeID:  s.clock.NodeID(),
		HostKey: hostKey,
	})
	if err != nil {
		return fmt.Errorf("failed to get token: %w", err)
	}

	auth := &storage.AuthData{
		Role:        resp.Role,
		AccessToken: resp.AccessToken,
		ExpiresAt:   s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}
	if err := s.authStorage.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	s.logger.Info("Logged in", "node_id", s.clock.NodeID(), "role", resp.Role)
	return nil
}

// Logout удаляет сохраненный токен
func (s *service) Logout(ctx context.Context) error {
	if err := s.authStorage.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// Publish публикует текущую таблицу сессии.
// При конфликте ревизий часы догоняют ревизию сервера и публикация повторяется один раз.
func (s *service) Publish(ctx context.Context, mapName string) (*PublishResult, error) {
	auth, err := s.currentAuth(ctx)
	if err != nil {
		return nil, err
	}
	if auth.Role != api.RoleHost {
		return nil, ErrHostRoleRequired
	}

	data, err := s.session.EncodedSnapshot()
	if err != nil {
		return nil, fmt.Errorf("nothing to publish: %w", err)
	}
	sum, err := checksum.Sum(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compute checksum: %w", err)
	}

	result := &PublishResult{}
	if table := s.session.Table(); table != nil {
		result.Spawners = table.Len()
		result.Items = table.ItemCount()
	}

	req := api.PushSnapshotRequest{
		MapName:  mapName,
		Checksum: sum,
		Table:    data,
		Revision: s.clock.Next(),
	}

	resp, err := s.apiClient.PushSnapshot(ctx, auth.AccessToken, req)
	if httpClient.IsStatus(err, http.StatusConflict) {
		s.logger.Warn("Revision conflict, catching up with server", "map", mapName, "revision", req.Revision)

		latest, fetchErr := s.apiClient.FetchLatest(ctx, auth.AccessToken, mapName)
		if fetchErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrStaleSnapshot, fetchErr)
		}
		s.clock.Observe(latest.Revision)
		req.Revision = s.clock.Next()
		result.Retried = true

		resp, err = s.apiClient.PushSnapshot(ctx, auth.AccessToken, req)
		if httpClient.IsStatus(err, http.StatusConflict) {
			return nil, ErrStaleSnapshot
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to publish snapshot: %w", err)
	}

	result.SnapshotID = resp.ID
	result.Revision = req.Revision

	s.cache(ctx, &models.Snapshot{
		CreatedAt: resp.CreatedAt,
		ID:        resp.ID,
		MapName:   mapName,
		NodeID:    s.clock.NodeID(),
		Checksum:  sum,
		Data:      data,
		Revision:  req.Revision,
	})
	s.saveRevision(ctx)

	s.logger.Info("Snapshot published",
		"map", mapName,
		"revision", result.Revision,
		"spawners", result.Spawners,
		"items", result.Items)

	return result, nil
}

// Pull получает последний снимок карты и устанавливает его в сессию
func (s *service) Pull(ctx context.Context, mapName string, lockAfter bool) (*PullResult, error) {
	auth, err := s.currentAuth(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.FetchLatest(ctx, auth.AccessToken, mapName)
	if err != nil {
		if httpClient.IsStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("%w %q on server", ErrNoSnapshot, mapName)
		}
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	snapshot := &models.Snapshot{
		CreatedAt: resp.CreatedAt,
		ID:        resp.ID,
		MapName:   mapName,
		NodeID:    resp.NodeID,
		Checksum:  resp.Checksum,
		Data:      resp.Table,
		Revision:  resp.Revision,
	}

	// Сервер проверяет контрольную сумму при публикации, клиент проверяет при получении
	if err := checksum.Verify(snapshot.Data, snapshot.Checksum); err != nil {
		return nil, fmt.Errorf("snapshot %s failed integrity check: %w", snapshot.ID, err)
	}

	// Запрос блокировки всегда доходит до сессии, даже для уже установленной ревизии
	if s.isApplied(snapshot) && (!lockAfter || s.session.IsLocked()) {
		s.logger.Debug("Snapshot already applied", "map", mapName, "revision", snapshot.Revision)
		return s.pullResult(snapshot, false), nil
	}

	if err := s.apply(ctx, snapshot, lockAfter); err != nil {
		return nil, err
	}

	s.cache(ctx, snapshot)
	if s.clock.IsNewer(snapshot.Revision) {
		s.clock.Observe(snapshot.Revision)
	}
	s.saveRevision(ctx)

	return s.pullResult(snapshot, true), nil
}

// ApplyCached устанавливает снимок из локального кэша
func (s *service) ApplyCached(ctx context.Context, mapName string, lockAfter bool) (*PullResult, error) {
	snapshot, err := s.snapshotStorage.GetSnapshot(ctx, mapName)
	if err != nil {
		if errors.Is(err, storage.ErrSnapshotNotFound) {
			return nil, fmt.Errorf("%w %q in cache", ErrNoSnapshot, mapName)
		}
		return nil, fmt.Errorf("failed to read cached snapshot: %w", err)
	}

	if err := checksum.Verify(snapshot.Data, snapshot.Checksum); err != nil {
		return nil, fmt.Errorf("cached snapshot failed integrity check: %w", err)
	}

	if err := s.apply(ctx, snapshot, lockAfter); err != nil {
		return nil, err
	}

	return s.pullResult(snapshot, true), nil
}

// History возвращает историю снимков карты
func (s *service) History(ctx context.Context, mapName string, limit int) ([]api.SnapshotResponse, error) {
	auth, err := s.currentAuth(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.History(ctx, auth.AccessToken, mapName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return resp.Snapshots, nil
}

// RemoteMaps возвращает карты со снимками на сервере
func (s *service) RemoteMaps(ctx context.Context) ([]string, error) {
	auth, err := s.currentAuth(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.ListMaps(ctx, auth.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}
	return resp.Maps, nil
}

// Status возвращает состояние узла
func (s *service) Status(ctx context.Context) (*Status, error) {
	status := &Status{
		NodeID:       s.clock.NodeID(),
		Revision:     s.clock.Current(),
		SessionState: s.session.State(),
		Matched:      s.session.MatchedCount(),
	}

	auth, err := s.authStorage.GetAuth(ctx)
	switch {
	case err == nil:
		status.Role = auth.Role
		status.TokenExpiresAt = time.Unix(auth.ExpiresAt, 0)
		status.Authenticated = !auth.IsExpired(s.now())
	case errors.Is(err, storage.ErrAuthNotFound):
	default:
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	cached, err := s.snapshotStorage.ListSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached snapshots: %w", err)
	}
	for _, snap := range cached {
		status.CachedMaps = append(status.CachedMaps, snap.MapName)
	}

	return status, nil
}

// currentAuth возвращает действующий токен
func (s *service) currentAuth(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.authStorage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}
	if auth.IsExpired(s.now()) {
		return nil, fmt.Errorf("%w (token expired)", ErrNotAuthenticated)
	}
	return auth, nil
}

// apply устанавливает снимок в сессию
func (s *service) apply(ctx context.Context, snapshot *models.Snapshot, lockAfter bool) error {
	if err := s.session.ApplyEncodedSnapshot(ctx, snapshot.Data, lockAfter); err != nil {
		return fmt.Errorf("failed to apply snapshot %s: %w", snapshot.ID, err)
	}
	s.mu.Lock()
	s.applied.revision = snapshot.Revision
	s.applied.nodeID = snapshot.NodeID
	s.applied.generation = s.session.Generation()
	s.mu.Unlock()

	s.logger.Info("Snapshot applied",
		"map", snapshot.MapName,
		"revision", snapshot.Revision,
		"host", snapshot.NodeID,
		"matched", s.session.MatchedCount(),
		"locked", s.session.IsLocked())
	return nil
}

// isApplied сообщает, что снимок уже стоит в сессии.
// Любая загрузка или захват после apply меняет поколение и сбрасывает отметку.
func (s *service) isApplied(snapshot *models.Snapshot) bool {
	if !s.session.IsReplaying() {
		return false
	}
	generation := s.session.Generation()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied.generation == generation &&
		s.applied.revision == snapshot.Revision &&
		s.applied.nodeID == snapshot.NodeID
}

// saveRevision сохраняет текущую ревизию часов для следующего запуска
func (s *service) saveRevision(ctx context.Context) {
	if err := s.metadataStorage.SaveLastRevision(ctx, s.clock.Current()); err != nil {
		s.logger.Warn("Failed to save last revision", "error", err)
	}
}

// cache сохраняет снимок в локальный кэш; ошибка кэша не прерывает операцию
func (s *service) cache(ctx context.Context, snapshot *models.Snapshot) {
	if err := s.snapshotStorage.SaveSnapshot(ctx, snapshot); err != nil {
		s.logger.Warn("Failed to cache snapshot", "map", snapshot.MapName, "error", err)
	}
}

func (s *service) pullResult(snapshot *models.Snapshot, applied bool) *PullResult {
	result := &PullResult{
		SnapshotID: snapshot.ID,
		NodeID:     snapshot.NodeID,
		Revision:   snapshot.Revision,
		Matched:    s.session.MatchedCount(),
		Applied:    applied,
		Locked:     s.session.IsLocked(),
	}
	if table := s.session.Table(); table != nil {
		result.Spawners = table.Len()
	}
	return result
}
