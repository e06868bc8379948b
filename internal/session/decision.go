package session

import "github.com/iudanet/spawnsync/internal/models"

// Action what the interception layer must do for one spawner trigger
type Action int

const (
	// ActionLive run the spawner's native random logic
	ActionLive Action = iota
	// ActionReplay instantiate the recorded items and skip native logic
	ActionReplay
	// ActionSuppress produce nothing
	ActionSuppress
)

func (a Action) String() string {
	switch a {
	case ActionLive:
		return "live"
	case ActionReplay:
		return "replay"
	case ActionSuppress:
		return "suppress"
	default:
		return "unknown"
	}
}

// Decision результат Session.Decision; Record заполнен только для ActionReplay
type Decision struct {
	Record *models.SpawnerRecord
	Action Action
}

// Policy флаги политики, читаются хостом один раз при старте
type Policy struct {
	// DisableLiveSpawn запрещает живой спавн вне захвата, пока нет загруженных данных
	DisableLiveSpawn bool
	// SpawnIfUnmatched разрешает живой спавн спавнерам без записи в режиме воспроизведения
	SpawnIfUnmatched bool
}

// State состояние сессии синхронизации
type State int

const (
	StateEmpty State = iota
	StateCaptured
	StateLoadedUnlocked
	StateLoadedLocked
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateCaptured:
		return "captured"
	case StateLoadedUnlocked:
		return "loaded"
	case StateLoadedLocked:
		return "loaded (locked)"
	default:
		return "unknown"
	}
}
