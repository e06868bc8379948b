package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/spawnsync/internal/models"
	"github.com/iudanet/spawnsync/internal/spawner"
)

// Interceptor реализует контракт точки вызова спавнера:
// спросить решение у сессии и выполнить его.
type Interceptor struct {
	session      *Session
	instantiator spawner.Instantiator
	logger       *slog.Logger
}

// NewInterceptor создает перехватчик для сессии
func NewInterceptor(session *Session, instantiator spawner.Instantiator, logger *slog.Logger) *Interceptor {
	return &Interceptor{
		session:      session,
		instantiator: instantiator,
		logger:       logger,
	}
}

// Produce выполняет одно срабатывание спавнера с учетом решения сессии.
// Возвращает предметы, появившиеся в мире (записанные или живые).
func (i *Interceptor) Produce(ctx context.Context, sp spawner.Spawner) ([]models.SpawnedItem, error) {
	decision := i.session.Decision(sp)

	switch decision.Action {
	case ActionReplay:
		items := make([]models.SpawnedItem, len(decision.Record.Items))
		copy(items, decision.Record.Items)
		if err := i.instantiator.Instantiate(ctx, sp, items); err != nil {
			return nil, fmt.Errorf("failed to instantiate recorded items: %w", err)
		}
		i.logger.Debug("Replayed spawner",
			"spawner_kind", sp.Kind(),
			"items", len(items))
		return items, nil

	case ActionSuppress:
		i.logger.Debug("Suppressed spawner", "spawner_kind", sp.Kind())
		return nil, nil

	default:
		items, err := trigger(ctx, sp)
		if err != nil {
			return nil, &TriggerError{
				SpawnerKind: sp.Kind(),
				SpawnerID:   spawner.RecordID(sp),
				Err:         err,
			}
		}
		i.session.RecordSpawnerOutput(sp, items)
		return items, nil
	}
}

// SpawnFromStartSpawners заставляет сработать все спавнеры с SpawnOnStart.
// Нужен после загрузки, когда живой спавн был отключен и стартовые спавнеры ничего не создали.
// Возвращает количество спавнеров, для которых появились предметы.
func (i *Interceptor) SpawnFromStartSpawners(ctx context.Context) (int, error) {
	live, err := i.session.discoverer.Spawners(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to discover spawners: %w", err)
	}

	produced := 0
	for _, sp := range live {
		if !sp.SpawnOnStart() {
			continue
		}
		items, err := i.Produce(ctx, sp)
		if err != nil {
			i.logger.Error("Failed to spawn from start spawner",
				"spawner_kind", sp.Kind(),
				"error", err)
			continue
		}
		if len(items) > 0 {
			produced++
		}
	}

	i.logger.Info("Spawned from start spawners", "spawners", produced)
	return produced, nil
}
