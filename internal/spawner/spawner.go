// Package spawner описывает границу между ядром синхронизации и движком:
// какие спавнеры есть в сцене и как заставить спавнер выдать предметы.
package spawner

import (
	"context"

	"github.com/iudanet/spawnsync/internal/models"
)

//go:generate moq -out spawner_mock.go . Spawner Discoverer

// Spawner defines the capability every concrete spawner variant exposes to the sync core.
// Implementations are compared by identity: the same live spawner must always be
// represented by the same handle value. Implementations must be pointer types:
// handles are used as map keys, and a value type that holds a slice or map
// panics when hashed.
type Spawner interface {
	// Kind returns the logical spawner type name used for type-compatible matching
	Kind() string

	// Position returns the current world position of the spawner
	Position() models.Vector3

	// StableID returns the network-stable identity and true, or false if there is none
	StableID() (int, bool)

	// SpawnOnStart reports whether the spawner produces items automatically at session start
	SpawnOnStart() bool

	// Trigger runs the spawner's native (random) production logic and returns what it produced.
	// Called only by the capture pass and by live decisions; may fail or block.
	Trigger(ctx context.Context) ([]models.SpawnedItem, error)
}

// Discoverer enumerates the spawners currently present in the active scene.
// The returned order carries no contract.
type Discoverer interface {
	// Spawners returns all live spawner handles in the scene
	Spawners(ctx context.Context) ([]Spawner, error)
}

// RecordID возвращает ID для записи: стабильный ID или models.NoSpawnerID
func RecordID(sp Spawner) int {
	if id, ok := sp.StableID(); ok && id >= 0 {
		return id
	}
	return models.NoSpawnerID
}
