// Package matcher binds live spawners of the current scene to recorded spawner entries.
package matcher

import (
	"log/slog"
	"math"

	"github.com/iudanet/spawnsync/internal/models"
	"github.com/iudanet/spawnsync/internal/spawner"
)

// ProximityTolerance максимальное (строго меньше) расстояние для сопоставления по позиции.
// Защищает от ложных пар между одинаковыми, но разными спавнерами (две стойки с багажом).
const ProximityTolerance = 0.01

// Matcher сопоставляет живые спавнеры с записанной таблицей
type Matcher struct {
	logger    *slog.Logger
	tolerance float64
}

// New создает matcher с допуском ProximityTolerance
func New(logger *slog.Logger) *Matcher {
	return &Matcher{
		logger:    logger,
		tolerance: ProximityTolerance,
	}
}

// Match строит ассоциацию в две фазы:
// 1. по стабильному ID (первая незанятая запись в порядке таблицы);
// 2. оставшиеся по типу и ближайшей позиции в пределах допуска.
// Несвязанные спавнеры и записи - допустимый результат, не ошибка.
func (m *Matcher) Match(live []spawner.Spawner, table *models.SpawnTable) *Association {
	assoc := NewAssociation()
	if table == nil {
		return assoc
	}

	m.logger.Debug("Matching spawners",
		"live", len(live),
		"recorded", table.Len())

	// Фаза 1: стабильный ID
	for _, sp := range live {
		id, ok := sp.StableID()
		if !ok || id < 0 {
			continue
		}
		for _, record := range table.Spawners {
			if record == nil || record.SpawnerID != id || assoc.IsClaimed(record) {
				continue
			}
			if assoc.Bind(sp, record) {
				assoc.ByID++
				m.logger.Debug("Matched spawner by id",
					"spawner_kind", sp.Kind(),
					"spawner_id", id)
			}
			break
		}
	}

	// Фаза 2: тип + ближайшая позиция
	for _, sp := range live {
		if _, bound := assoc.Record(sp); bound {
			continue
		}

		kind := sp.Kind()
		pos := sp.Position()

		var (
			best     *models.SpawnerRecord
			bestDist = math.Inf(1)
		)
		for _, record := range table.Spawners {
			if record == nil || record.SpawnerKind != kind || assoc.IsClaimed(record) {
				continue
			}
			dist := pos.Distance(record.SpawnerPosition)
			if dist < bestDist {
				best = record
				bestDist = dist
			}
		}

		if best == nil {
			m.logger.Info("No recorded spawner of matching kind",
				"spawner_kind", kind,
				"position", pos)
			continue
		}
		if bestDist >= m.tolerance {
			m.logger.Info("Nearest recorded spawner is out of tolerance",
				"spawner_kind", kind,
				"position", pos,
				"distance", bestDist)
			continue
		}

		if assoc.Bind(sp, best) {
			assoc.ByProximity++
			m.logger.Debug("Matched spawner by proximity",
				"spawner_kind", kind,
				"position", best.SpawnerPosition,
				"distance", bestDist)
		}
	}

	m.logger.Info("Spawner matching completed",
		"by_id", assoc.ByID,
		"by_proximity", assoc.ByProximity,
		"matched", assoc.Len(),
		"recorded", table.Len(),
		"live", len(live))

	return assoc
}
