package models

import "time"

// Snapshot закодированная таблица спавна одной карты, опубликованная хостом.
// Хранится в архиве сервера и в кэше клиента.
type Snapshot struct {
	CreatedAt time.Time `json:"created_at"` // CreatedAt время публикации
	ID        string    `json:"id"`         // ID уникальный идентификатор снимка (UUID)
	MapName   string    `json:"map_name"`   // MapName карта, для которой записана таблица
	NodeID    string    `json:"node_id"`    // NodeID идентификатор хоста, опубликовавшего снимок
	Checksum  string    `json:"checksum"`   // Checksum BLAKE2b-256 от Data
	Data      []byte    `json:"data"`       // Data закодированная таблица спавна
	Revision  int64     `json:"revision"`   // Revision Lamport timestamp публикации
}

// IsNewerThan сравнивает два снимка одной карты.
// Сначала сравнивается Revision (больший выигрывает),
// при равных Revision сравнивается NodeID (лексикографически) для детерминизма.
func (s *Snapshot) IsNewerThan(other *Snapshot) bool {
	if other == nil {
		return true
	}
	if s.Revision != other.Revision {
		return s.Revision > other.Revision
	}
	return s.NodeID > other.NodeID
}

// Clone создает глубокую копию снимка
func (s *Snapshot) Clone() *Snapshot {
	data := make([]byte, len(s.Data))
	copy(data, s.Data)

	return &Snapshot{
		CreatedAt: s.CreatedAt,
		ID:        s.ID,
		MapName:   s.MapName,
		NodeID:    s.NodeID,
		Checksum:  s.Checksum,
		Data:      data,
		Revision:  s.Revision,
	}
}
