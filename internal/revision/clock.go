// Package revision упорядочивает снимки таблиц спавна между хостом и клиентами.
package revision

import (
	"sync"

	"github.com/google/uuid"
)

// Clock логические часы Лампорта для ревизий снимков.
// Хост увеличивает ревизию при каждой публикации, клиент принимает
// только снимки с ревизией больше уже примененной.
type Clock struct {
	nodeID  string     // идентификатор узла
	counter int64      // последняя выданная или принятая ревизия
	mu      sync.Mutex // мьютекс для потокобезопасности
}

// New создает часы с новым идентификатором узла (UUID)
func New() *Clock {
	return &Clock{nodeID: uuid.New().String()}
}

// NewWithNodeID создает часы с заданным идентификатором узла.
// Используется при восстановлении состояния из кэша.
func NewWithNodeID(nodeID string) *Clock {
	return &Clock{nodeID: nodeID}
}

// Next выдает следующую ревизию для локальной публикации
func (c *Clock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counter++
	return c.counter
}

// Observe учитывает ревизию, полученную от другого узла:
// counter = max(counter, remote) + 1
func (c *Clock) Observe(remote int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if remote > c.counter {
		c.counter = remote
	}
	c.counter++

	return c.counter
}

// IsNewer сообщает, что удаленная ревизия еще не была учтена
func (c *Clock) IsNewer(remote int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return remote > c.counter
}

// Current возвращает текущую ревизию без изменения
func (c *Clock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.counter
}

// NodeID возвращает идентификатор узла
func (c *Clock) NodeID() string {
	return c.nodeID
}

// Restore устанавливает ревизию, сохраненную ранее (например, после перезапуска)
func (c *Clock) Restore(value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counter = value
}
