package session

import (
	"errors"
	"fmt"
)

var (
	// ErrLocked indicates that the session data is locked and can no longer be replaced
	ErrLocked = errors.New("spawn data is locked")

	// ErrNoTable indicates that there is no spawn table to load or export
	ErrNoTable = errors.New("no spawn table")

	// ErrNonFinite indicates NaN or infinite coordinates in spawner output; such output cannot be encoded
	ErrNonFinite = errors.New("non-finite coordinates in spawner output")
)

// TriggerError описывает сбой нативной логики одного спавнера.
// Ошибка логируется, спавнер исключается из результатов захвата.
type TriggerError struct {
	Err         error
	SpawnerKind string
	SpawnerID   int
}

func (e *TriggerError) Error() string {
	return fmt.Sprintf("trigger spawner %s (id %d): %v", e.SpawnerKind, e.SpawnerID, e.Err)
}

func (e *TriggerError) Unwrap() error {
	return e.Err
}
