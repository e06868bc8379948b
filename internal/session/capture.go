package session

import (
	"context"
	"fmt"

	"github.com/iudanet/spawnsync/internal/matcher"
	"github.com/iudanet/spawnsync/internal/models"
	"github.com/iudanet/spawnsync/internal/spawner"
)

// CaptureResult итог одного прохода захвата
type CaptureResult struct {
	Failed   []*TriggerError
	Spawners int
	Items    int
}

// Capture запускает авторитетный проход захвата: таблица сбрасывается,
// каждый найденный спавнер срабатывает один раз, результаты записываются.
// Спавнеры вызываются без удержания блокировки сессии, поэтому зависший
// спавнер не блокирует Decision и Load.
// Сбой одного спавнера не прерывает проход.
func (s *Session) Capture(ctx context.Context) (CaptureResult, error) {
	var result CaptureResult

	if s.IsLocked() {
		s.logger.Warn("Spawn data is locked. Cannot capture new data.")
		return result, ErrLocked
	}

	live, err := s.discoverer.Spawners(ctx)
	if err != nil {
		s.logger.Error("Failed to discover spawners", "error", err)
		return result, fmt.Errorf("failed to discover spawners: %w", err)
	}

	gen, err := s.beginCapture()
	if err != nil {
		return result, err
	}
	defer s.endCapture(gen)

	s.logger.Info("Capturing spawn data", "spawners", len(live))

	for _, sp := range live {
		if err := ctx.Err(); err != nil {
			s.logger.Warn("Capture interrupted", "error", err)
			return result, fmt.Errorf("capture interrupted: %w", err)
		}

		items, err := trigger(ctx, sp)
		if err == nil {
			err = checkFinite(sp, items)
		}
		if err != nil {
			trigErr := &TriggerError{
				SpawnerKind: sp.Kind(),
				SpawnerID:   spawner.RecordID(sp),
				Err:         err,
			}
			s.logger.Error("Spawner failed during capture",
				"spawner_kind", trigErr.SpawnerKind,
				"spawner_id", trigErr.SpawnerID,
				"error", err)
			result.Failed = append(result.Failed, trigErr)
			continue
		}

		s.recordOutput(gen, sp, items)
	}

	// В итог входят и выводы, записанные через RecordSpawnerOutput во время прохода
	s.mu.RLock()
	if s.captureGen == gen {
		result.Spawners = s.table.Len()
		result.Items = s.table.ItemCount()
	}
	s.mu.RUnlock()

	s.logger.Info("Spawn data captured",
		"spawners", result.Spawners,
		"items", result.Items,
		"failed", len(result.Failed))

	return result, nil
}

// RecordSpawnerOutput записывает результат живого срабатывания спавнера,
// если сейчас идет захват. Для каждого спавнера сохраняется только первый результат.
func (s *Session) RecordSpawnerOutput(sp spawner.Spawner, items []models.SpawnedItem) bool {
	s.mu.RLock()
	capturing, gen := s.capturing, s.captureGen
	s.mu.RUnlock()

	if !capturing {
		return false
	}
	if err := checkFinite(sp, items); err != nil {
		s.logger.Warn("Spawner output rejected",
			"spawner_kind", sp.Kind(),
			"spawner_id", spawner.RecordID(sp),
			"error", err)
		return false
	}
	return s.recordOutput(gen, sp, items)
}

// checkFinite отклоняет вывод с NaN или бесконечными координатами
func checkFinite(sp spawner.Spawner, items []models.SpawnedItem) error {
	if !sp.Position().IsFinite() {
		return fmt.Errorf("%w: spawner position", ErrNonFinite)
	}
	for i, item := range items {
		if !item.Position.IsFinite() || !item.Rotation.IsFinite() {
			return fmt.Errorf("%w: item %d (%s)", ErrNonFinite, i, item.ItemKind)
		}
	}
	return nil
}

func (s *Session) beginCapture() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Повторная проверка: Load с блокировкой мог успеть между проверкой и захватом
	if s.locked {
		s.logger.Warn("Spawn data is locked. Cannot capture new data.")
		return 0, ErrLocked
	}

	s.table = models.NewSpawnTable()
	s.assoc = matcher.NewAssociation()
	s.replay = false
	s.capturing = true
	s.captureGen++

	return s.captureGen, nil
}

func (s *Session) endCapture(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.captureGen == gen {
		s.capturing = false
	}
}

// recordOutput добавляет запись в таблицу текущего захвата.
// Результаты устаревшего поколения (после Load или нового захвата) отбрасываются.
func (s *Session) recordOutput(gen uint64, sp spawner.Spawner, items []models.SpawnedItem) bool {
	// Свойства спавнера читаем до блокировки: это вызовы внешнего кода
	record := &models.SpawnerRecord{
		SpawnerKind:     sp.Kind(),
		SpawnerID:       spawner.RecordID(sp),
		SpawnerPosition: sp.Position(),
		Items:           make([]models.SpawnedItem, 0, len(items)),
	}
	for _, item := range items {
		item.ItemKind = models.TrimCloneSuffix(item.ItemKind)
		if item.OriginID != nil {
			id := *item.OriginID
			item.OriginID = &id
		}
		record.Items = append(record.Items, item)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.capturing || s.captureGen != gen || s.table == nil {
		return false
	}
	if !s.assoc.Bind(sp, record) {
		s.logger.Debug("Spawner output already recorded",
			"spawner_kind", record.SpawnerKind,
			"spawner_id", record.SpawnerID)
		return false
	}
	s.table.Spawners = append(s.table.Spawners, record)

	s.logger.Debug("Recorded spawner output",
		"spawner_kind", record.SpawnerKind,
		"spawner_id", record.SpawnerID,
		"items", len(record.Items))

	return true
}

// trigger вызывает нативную логику спавнера; паника превращается в ошибку
func trigger(ctx context.Context, sp spawner.Spawner) (items []models.SpawnedItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return sp.Trigger(ctx)
}
