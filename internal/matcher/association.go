package matcher

import (
	"github.com/iudanet/spawnsync/internal/models"
	"github.com/iudanet/spawnsync/internal/spawner"
)

// Association инъективное частичное отображение живых спавнеров на записи таблицы.
// Строится заново при каждой загрузке, записи сравниваются по указателю.
type Association struct {
	bySpawner   map[spawner.Spawner]*models.SpawnerRecord
	byRecord    map[*models.SpawnerRecord]spawner.Spawner
	ByID        int // ByID количество пар, найденных по стабильному ID
	ByProximity int // ByProximity количество пар, найденных по позиции
}

// NewAssociation создает пустую ассоциацию
func NewAssociation() *Association {
	return &Association{
		bySpawner: make(map[spawner.Spawner]*models.SpawnerRecord),
		byRecord:  make(map[*models.SpawnerRecord]spawner.Spawner),
	}
}

// Bind связывает спавнер с записью.
// Возвращает false, если спавнер или запись уже связаны: инъективность не нарушается.
func (a *Association) Bind(sp spawner.Spawner, record *models.SpawnerRecord) bool {
	if _, ok := a.bySpawner[sp]; ok {
		return false
	}
	if _, ok := a.byRecord[record]; ok {
		return false
	}
	a.bySpawner[sp] = record
	a.byRecord[record] = sp
	return true
}

// Record возвращает запись, связанную со спавнером
func (a *Association) Record(sp spawner.Spawner) (*models.SpawnerRecord, bool) {
	if a == nil {
		return nil, false
	}
	record, ok := a.bySpawner[sp]
	return record, ok
}

// Spawner возвращает спавнер, связанный с записью
func (a *Association) Spawner(record *models.SpawnerRecord) (spawner.Spawner, bool) {
	if a == nil {
		return nil, false
	}
	sp, ok := a.byRecord[record]
	return sp, ok
}

// IsClaimed сообщает, занята ли запись
func (a *Association) IsClaimed(record *models.SpawnerRecord) bool {
	_, ok := a.Spawner(record)
	return ok
}

// Len возвращает количество связанных пар
func (a *Association) Len() int {
	if a == nil {
		return 0
	}
	return len(a.bySpawner)
}
