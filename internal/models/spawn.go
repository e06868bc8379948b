package models

import (
	"math"
	"strings"
)

// NoSpawnerID значение SpawnerID для спавнера без стабильного сетевого идентификатора.
// Такие спавнеры сопоставляются только по позиции.
const NoSpawnerID = -1

// cloneSuffix суффикс, который движок добавляет к именам инстанцированных объектов
const cloneSuffix = "(Clone)"

// Vector3 точка или направление в мировых координатах
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Distance возвращает евклидово расстояние между двумя точками
func (v Vector3) Distance(other Vector3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// IsFinite сообщает, что все координаты конечны
func (v Vector3) IsFinite() bool {
	return finite(v.X, v.Y, v.Z)
}

// Quaternion ориентация объекта
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// IsFinite сообщает, что все компоненты конечны
func (q Quaternion) IsFinite() bool {
	return finite(q.X, q.Y, q.Z, q.W)
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IdentityRotation кватернион без поворота
var IdentityRotation = Quaternion{W: 1}

// SpawnedItem описывает один заспавненный объект: что и где было создано.
// После захвата не изменяется.
type SpawnedItem struct {
	OriginID *int       `json:"origin_id,omitempty"` // OriginID сетевой ID исходного объекта (если был)
	ItemKind string     `json:"item_kind"`           // ItemKind имя префаба предмета
	Rotation Quaternion `json:"rotation"`            // Rotation ориентация предмета
	Position Vector3    `json:"position"`            // Position позиция предмета
}

// SpawnerRecord полный результат одного спавнера за проход захвата
type SpawnerRecord struct {
	SpawnerKind     string        `json:"spawner_kind"`     // SpawnerKind логический тип спавнера ("Luggage", "BerryBush")
	Items           []SpawnedItem `json:"items"`            // Items предметы в порядке создания
	SpawnerPosition Vector3       `json:"spawner_position"` // SpawnerPosition позиция спавнера
	SpawnerID       int           `json:"spawner_id"`       // SpawnerID стабильный ID или NoSpawnerID
}

// HasStableID сообщает, есть ли у записи стабильный идентификатор
func (r *SpawnerRecord) HasStableID() bool {
	return r.SpawnerID >= 0
}

// Clone создает глубокую копию записи
func (r *SpawnerRecord) Clone() *SpawnerRecord {
	items := make([]SpawnedItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = item
		if item.OriginID != nil {
			id := *item.OriginID
			items[i].OriginID = &id
		}
	}

	return &SpawnerRecord{
		SpawnerKind:     r.SpawnerKind,
		SpawnerID:       r.SpawnerID,
		SpawnerPosition: r.SpawnerPosition,
		Items:           items,
	}
}

// SpawnTable снимок всех спавнеров карты за одну сессию.
// Порядок записей сохраняется для детерминированной сериализации.
type SpawnTable struct {
	Spawners []*SpawnerRecord `json:"spawners"`
}

// NewSpawnTable создает пустую таблицу
func NewSpawnTable() *SpawnTable {
	return &SpawnTable{Spawners: []*SpawnerRecord{}}
}

// Len возвращает количество записей спавнеров
func (t *SpawnTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Spawners)
}

// IsEmpty сообщает, что в таблице нет ни одной записи
func (t *SpawnTable) IsEmpty() bool {
	return t.Len() == 0
}

// ItemCount возвращает суммарное количество предметов во всех записях
func (t *SpawnTable) ItemCount() int {
	if t == nil {
		return 0
	}
	count := 0
	for _, spawner := range t.Spawners {
		if spawner != nil {
			count += len(spawner.Items)
		}
	}
	return count
}

// Clone создает глубокую копию таблицы
func (t *SpawnTable) Clone() *SpawnTable {
	clone := NewSpawnTable()
	if t == nil {
		return clone
	}
	for _, spawner := range t.Spawners {
		if spawner == nil {
			continue
		}
		clone.Spawners = append(clone.Spawners, spawner.Clone())
	}
	return clone
}

// TrimCloneSuffix убирает суффикс "(Clone)" из имени инстанцированного объекта
func TrimCloneSuffix(name string) string {
	return strings.TrimSuffix(name, cloneSuffix)
}
