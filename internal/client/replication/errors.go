package replication

import "errors"

var (
	// ErrNotAuthenticated нет действующего токена доступа, нужно выполнить login
	ErrNotAuthenticated = errors.New("not authenticated: run login first")

	// ErrHostRoleRequired публиковать таблицы может только узел с ролью host
	ErrHostRoleRequired = errors.New("publishing requires a host token")

	// ErrNoSnapshot для карты нет опубликованного или сохраненного снимка
	ErrNoSnapshot = errors.New("no snapshot for map")

	// ErrStaleSnapshot сервер уже хранит более новый снимок карты
	ErrStaleSnapshot = errors.New("server holds a newer snapshot of this map")
)
