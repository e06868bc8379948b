package spawner

import (
	"context"
	"sync"

	"github.com/iudanet/spawnsync/internal/models"
)

//go:generate moq -out instantiator_mock.go . Instantiator

// Instantiator creates recorded items in the engine, bypassing the spawner's random logic.
type Instantiator interface {
	// Instantiate creates exactly the given items at their recorded transforms on behalf of sp
	Instantiate(ctx context.Context, sp Spawner, items []models.SpawnedItem) error
}

// Collector Instantiator, который только запоминает созданные предметы.
// Используется CLI для отчета о воспроизведении и в тестах.
type Collector struct {
	spawned map[Spawner][]models.SpawnedItem
	total   int
	mu      sync.Mutex
}

// NewCollector создает пустой collector
func NewCollector() *Collector {
	return &Collector{spawned: make(map[Spawner][]models.SpawnedItem)}
}

// Instantiate запоминает предметы спавнера
func (c *Collector) Instantiate(ctx context.Context, sp Spawner, items []models.SpawnedItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.spawned[sp] = append(c.spawned[sp], items...)
	c.total += len(items)
	return nil
}

// Items возвращает предметы, созданные для спавнера
func (c *Collector) Items(sp Spawner) []models.SpawnedItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.SpawnedItem, len(c.spawned[sp]))
	copy(items, c.spawned[sp])
	return items
}

// Total возвращает общее количество созданных предметов
func (c *Collector) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}
