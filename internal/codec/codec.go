// Package codec converts spawn tables to and from their transmissible JSON form.
//
// Decoding is tolerant: unknown fields are ignored, field names of the legacy
// format ("Spawners", "SpawnerTypeName", "ItemPrefabName", ...) are accepted, and
// a record missing required geometry is dropped with a warning while the rest of
// the table is still decoded. Only input that is not a JSON object with an
// optional spawners array is rejected with a *DecodeError.
package codec

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/iudanet/spawnsync/internal/models"
)

// Имена полей: текущий формат первым, затем устаревшие варианты
var (
	keysSpawners        = []string{"spawners", "Spawners"}
	keysSpawnerKind     = []string{"spawner_kind", "spawnerKind", "SpawnerTypeName"}
	keysSpawnerID       = []string{"spawner_id", "spawnerId", "SpawnerInstanceID"}
	keysSpawnerPosition = []string{"spawner_position", "spawnerPosition", "SpawnerPosition"}
	keysItems           = []string{"items", "Items", "SpawnedItems"}
	keysItemKind        = []string{"item_kind", "itemKind", "ItemPrefabName"}
	keysPosition        = []string{"position", "Position"}
	keysRotation        = []string{"rotation", "Rotation"}
	keysOriginID        = []string{"origin_id", "originId"}
)

const keyLegacyOriginID = "ViewID"

// Codec кодирует и декодирует таблицы спавна
type Codec struct {
	logger *slog.Logger
}

// New создает новый codec
func New(logger *slog.Logger) *Codec {
	return &Codec{logger: logger}
}

// Encode сериализует таблицу в компактный JSON.
// Для любой корректной таблицы не возвращает ошибку; nil таблица кодируется как пустая.
func (c *Codec) Encode(table *models.SpawnTable) ([]byte, error) {
	return encode(table, false)
}

// EncodeIndent сериализует таблицу в читаемый JSON для файлов
func (c *Codec) EncodeIndent(table *models.SpawnTable) ([]byte, error) {
	return encode(table, true)
}

func encode(table *models.SpawnTable, indent bool) ([]byte, error) {
	if table == nil {
		table = models.NewSpawnTable()
	}

	// nil-срезы кодируем как [] для стабильного вида
	out := &models.SpawnTable{Spawners: make([]*models.SpawnerRecord, 0, len(table.Spawners))}
	for _, record := range table.Spawners {
		if record == nil {
			continue
		}
		if record.Items == nil {
			clone := *record
			clone.Items = []models.SpawnedItem{}
			record = &clone
		}
		out.Spawners = append(out.Spawners, record)
	}

	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode spawn table: %w", err)
	}
	return data, nil
}

// Decode разбирает закодированную таблицу.
// Записи без обязательной геометрии отбрасываются с предупреждением в лог.
func (c *Codec) Decode(data []byte) (*models.SpawnTable, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Reason: "empty input"}
	}
	if !gjson.ValidBytes(data) {
		return nil, &DecodeError{Reason: "malformed JSON"}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &DecodeError{Reason: fmt.Sprintf("expected JSON object, got %s", root.Type)}
	}

	table := models.NewSpawnTable()

	spawners, ok := lookup(root, keysSpawners)
	if !ok || spawners.Type == gjson.Null {
		// Частичная форма без списка спавнеров - пустая таблица
		return table, nil
	}
	if !spawners.IsArray() {
		return nil, &DecodeError{Reason: "spawners is not an array"}
	}

	dropped := 0
	for i, raw := range spawners.Array() {
		record, err := decodeRecord(raw)
		if err != nil {
			dropped++
			c.logger.Warn("Dropping malformed spawner record",
				"index", i,
				"error", err)
			continue
		}
		table.Spawners = append(table.Spawners, record)
	}

	if dropped > 0 {
		c.logger.Warn("Spawn table decoded with losses",
			"kept", len(table.Spawners),
			"dropped", dropped)
	}

	return table, nil
}

// decodeRecord разбирает одну запись спавнера
func decodeRecord(raw gjson.Result) (*models.SpawnerRecord, error) {
	if !raw.IsObject() {
		return nil, fmt.Errorf("record is not an object")
	}

	kind, ok := lookup(raw, keysSpawnerKind)
	if !ok || kind.Type != gjson.String || kind.Str == "" {
		return nil, fmt.Errorf("missing spawner kind")
	}

	position, ok := lookup(raw, keysSpawnerPosition)
	if !ok {
		return nil, fmt.Errorf("missing spawner position")
	}
	spawnerPos, err := decodeVector(position)
	if err != nil {
		return nil, fmt.Errorf("spawner position: %w", err)
	}

	record := &models.SpawnerRecord{
		SpawnerKind:     kind.Str,
		SpawnerID:       models.NoSpawnerID,
		SpawnerPosition: spawnerPos,
		Items:           []models.SpawnedItem{},
	}

	if id, ok := lookup(raw, keysSpawnerID); ok && id.Type == gjson.Number {
		record.SpawnerID = int(id.Int())
		if record.SpawnerID < 0 {
			record.SpawnerID = models.NoSpawnerID
		}
	}

	items, ok := lookup(raw, keysItems)
	if !ok || items.Type == gjson.Null {
		return record, nil
	}
	if !items.IsArray() {
		return nil, fmt.Errorf("items is not an array")
	}

	for i, rawItem := range items.Array() {
		item, err := decodeItem(rawItem)
		if err != nil {
			// Частичный список предметов нельзя воспроизвести корректно - отбрасываем запись целиком
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		record.Items = append(record.Items, item)
	}

	return record, nil
}

func decodeItem(raw gjson.Result) (models.SpawnedItem, error) {
	var item models.SpawnedItem
	if !raw.IsObject() {
		return item, fmt.Errorf("item is not an object")
	}

	kind, ok := lookup(raw, keysItemKind)
	if !ok || kind.Type != gjson.String || kind.Str == "" {
		return item, fmt.Errorf("missing item kind")
	}
	item.ItemKind = kind.Str

	position, ok := lookup(raw, keysPosition)
	if !ok {
		return item, fmt.Errorf("missing position")
	}
	pos, err := decodeVector(position)
	if err != nil {
		return item, fmt.Errorf("position: %w", err)
	}
	item.Position = pos

	rotation, ok := lookup(raw, keysRotation)
	if !ok {
		return item, fmt.Errorf("missing rotation")
	}
	rot, err := decodeQuaternion(rotation)
	if err != nil {
		return item, fmt.Errorf("rotation: %w", err)
	}
	item.Rotation = rot

	if origin, ok := lookup(raw, keysOriginID); ok && origin.Type == gjson.Number {
		id := int(origin.Int())
		item.OriginID = &id
	} else if legacy := raw.Get(keyLegacyOriginID); legacy.Type == gjson.Number && legacy.Int() != 0 {
		// В старом формате ViewID присутствует всегда, 0 означает "нет"
		id := int(legacy.Int())
		item.OriginID = &id
	}

	return item, nil
}

func decodeVector(raw gjson.Result) (models.Vector3, error) {
	var v models.Vector3
	if !raw.IsObject() {
		return v, fmt.Errorf("not an object")
	}
	var err error
	if v.X, err = component(raw, "x"); err != nil {
		return v, err
	}
	if v.Y, err = component(raw, "y"); err != nil {
		return v, err
	}
	if v.Z, err = component(raw, "z"); err != nil {
		return v, err
	}
	return v, nil
}

func decodeQuaternion(raw gjson.Result) (models.Quaternion, error) {
	var q models.Quaternion
	if !raw.IsObject() {
		return q, fmt.Errorf("not an object")
	}
	var err error
	if q.X, err = component(raw, "x"); err != nil {
		return q, err
	}
	if q.Y, err = component(raw, "y"); err != nil {
		return q, err
	}
	if q.Z, err = component(raw, "z"); err != nil {
		return q, err
	}
	if q.W, err = component(raw, "w"); err != nil {
		return q, err
	}
	return q, nil
}

// component читает числовую компоненту вектора (x или X)
func component(raw gjson.Result, name string) (float64, error) {
	value, ok := lookup(raw, []string{name, strings.ToUpper(name)})
	if !ok || value.Type != gjson.Number {
		return 0, fmt.Errorf("missing numeric %q", name)
	}
	return value.Float(), nil
}

// lookup возвращает первое существующее поле из списка имен
func lookup(obj gjson.Result, keys []string) (gjson.Result, bool) {
	for _, key := range keys {
		if value := obj.Get(key); value.Exists() {
			return value, true
		}
	}
	return gjson.Result{}, false
}
