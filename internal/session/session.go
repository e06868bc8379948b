// Package session owns the spawn synchronisation state of one game round:
// the current spawn table, the live-to-recorded association and the lock flag.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/spawnsync/internal/codec"
	"github.com/iudanet/spawnsync/internal/matcher"
	"github.com/iudanet/spawnsync/internal/models"
	"github.com/iudanet/spawnsync/internal/spawner"
)

// Session единственный изменяемый источник состояния синхронизации для раунда.
// Все поля защищены mu; вызовы внешних спавнеров выполняются без удержания mu.
type Session struct {
	discoverer spawner.Discoverer
	matcher    *matcher.Matcher
	codec      *codec.Codec
	logger     *slog.Logger
	table      *models.SpawnTable
	assoc      *matcher.Association
	policy     Policy
	captureGen uint64
	mu         sync.RWMutex
	locked     bool
	replay     bool
	capturing  bool
}

// New создает сессию в состоянии StateEmpty
func New(discoverer spawner.Discoverer, policy Policy, logger *slog.Logger) *Session {
	return &Session{
		discoverer: discoverer,
		matcher:    matcher.New(logger),
		codec:      codec.New(logger),
		logger:     logger,
		assoc:      matcher.NewAssociation(),
		policy:     policy,
	}
}

// Decision возвращает решение для одного срабатывания спавнера.
// Чистая функция от состояния сессии и флагов политики.
func (s *Session) Decision(sp spawner.Spawner) Decision {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.replay {
		if record, ok := s.assoc.Record(sp); ok {
			return Decision{Action: ActionReplay, Record: record}
		}
		if s.policy.SpawnIfUnmatched {
			return Decision{Action: ActionLive}
		}
		return Decision{Action: ActionSuppress}
	}

	if s.policy.DisableLiveSpawn && !s.capturing {
		return Decision{Action: ActionSuppress}
	}
	return Decision{Action: ActionLive}
}

// Load устанавливает копию таблицы и заново сопоставляет с ней все спавнеры сцены.
// При заблокированной сессии возвращает ErrLocked и ничего не меняет.
// lockAfter блокирует сессию до конца ее жизни.
func (s *Session) Load(ctx context.Context, table *models.SpawnTable, lockAfter bool) error {
	if table == nil {
		return ErrNoTable
	}

	// Быстрая проверка, чтобы не обходить сцену зря; решающая проверка ниже под mu
	if s.IsLocked() {
		s.logger.Warn("Spawn data is locked. Cannot load new data.")
		return ErrLocked
	}

	live, err := s.discoverer.Spawners(ctx)
	if err != nil {
		s.logger.Error("Failed to discover spawners", "error", err)
		return fmt.Errorf("failed to discover spawners: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locked {
		s.logger.Warn("Spawn data is locked. Cannot load new data.")
		return ErrLocked
	}

	s.logger.Info("Loading spawn data",
		"live_spawners", len(live),
		"recorded_spawners", table.Len())

	// Сессия владеет своей копией: изменения таблицы вызывающим ее не затрагивают
	s.table = table.Clone()
	s.assoc = s.matcher.Match(live, s.table)
	s.replay = true
	// Загрузка прерывает незавершенный захват: его результаты больше не записываются
	s.capturing = false
	s.captureGen++

	if lockAfter {
		s.locked = true
	}

	s.logger.Info("Started replaying spawner data",
		"spawners", table.Len(),
		"items", table.ItemCount(),
		"matched", s.assoc.Len(),
		"locked", s.locked)

	return nil
}

// Record возвращает запись, связанную со спавнером в текущей ассоциации
func (s *Session) Record(sp spawner.Spawner) (*models.SpawnerRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assoc.Record(sp)
}

// HasRecord сообщает, есть ли у спавнера запись
func (s *Session) HasRecord(sp spawner.Spawner) bool {
	_, ok := s.Record(sp)
	return ok
}

// Table возвращает копию текущей таблицы или nil, если таблицы нет
func (s *Session) Table() *models.SpawnTable {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.table == nil {
		return nil
	}
	return s.table.Clone()
}

// MatchedCount возвращает количество связанных спавнеров
func (s *Session) MatchedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assoc.Len()
}

// State возвращает текущее состояние сессии
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.locked:
		return StateLoadedLocked
	case s.replay:
		return StateLoadedUnlocked
	case s.table != nil:
		return StateCaptured
	default:
		return StateEmpty
	}
}

// IsLocked сообщает, заблокированы ли данные
func (s *Session) IsLocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locked
}

// IsReplaying сообщает, активен ли режим воспроизведения
func (s *Session) IsReplaying() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.replay
}

// IsCapturing сообщает, идет ли сейчас проход захвата
func (s *Session) IsCapturing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.capturing
}

// Generation возвращает номер поколения таблицы.
// Растет при каждой загрузке и каждом захвате.
func (s *Session) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.captureGen
}

// Policy возвращает флаги политики
func (s *Session) Policy() Policy {
	return s.policy
}
