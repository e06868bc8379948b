package spawner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/iudanet/spawnsync/internal/models"
)

// Static спавнер с заранее заданным результатом.
// Используется для сцен-фикстур в CLI и тестах, где случайная логика движка недоступна.
type Static struct {
	Err       error                `json:"-"`
	ID        *int                 `json:"id,omitempty"`
	KindName  string               `json:"kind"`
	Output    []models.SpawnedItem `json:"output"`
	Pos       models.Vector3       `json:"position"`
	OnStart   bool                 `json:"spawn_on_start"`
	triggered int
	mu        sync.Mutex
}

// Kind returns the spawner kind
func (s *Static) Kind() string { return s.KindName }

// Position returns the spawner position
func (s *Static) Position() models.Vector3 { return s.Pos }

// StableID returns the configured id, if any
func (s *Static) StableID() (int, bool) {
	if s.ID == nil {
		return models.NoSpawnerID, false
	}
	return *s.ID, true
}

// SpawnOnStart reports the configured flag
func (s *Static) SpawnOnStart() bool { return s.OnStart }

// Trigger returns a copy of the configured output or the configured error
func (s *Static) Trigger(ctx context.Context) ([]models.SpawnedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.triggered++
	if s.Err != nil {
		return nil, s.Err
	}
	items := make([]models.SpawnedItem, len(s.Output))
	copy(items, s.Output)
	return items, nil
}

// Triggered возвращает, сколько раз спавнер был запущен
func (s *Static) Triggered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triggered
}

// Scene фиксированный набор спавнеров, реализует Discoverer
type Scene struct {
	Name  string    `json:"name"`
	Items []*Static `json:"spawners"`
}

// Spawners returns every spawner of the scene
func (s *Scene) Spawners(ctx context.Context) ([]Spawner, error) {
	result := make([]Spawner, 0, len(s.Items))
	for _, item := range s.Items {
		result = append(result, item)
	}
	return result, nil
}

// LoadScene читает описание сцены-фикстуры в JSON
func LoadScene(r io.Reader) (*Scene, error) {
	var scene Scene
	if err := json.NewDecoder(r).Decode(&scene); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	for i, item := range scene.Items {
		if item == nil || item.KindName == "" {
			return nil, fmt.Errorf("scene spawner %d: kind is required", i)
		}
	}
	return &scene, nil
}
