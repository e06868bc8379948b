package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

const (
	// NodeIDKey ключ для хранения node_id в контексте
	NodeIDKey contextKey = "node_id"
	// RoleKey ключ для хранения роли в контексте
	RoleKey contextKey = "role"
)

// WithIdentity добавляет идентичность узла в контекст запроса
func WithIdentity(ctx context.Context, nodeID, role string) context.Context {
	ctx = context.WithValue(ctx, NodeIDKey, nodeID)
	return context.WithValue(ctx, RoleKey, role)
}

// GetNodeID извлекает node_id из контекста запроса
func GetNodeID(ctx context.Context) (string, bool) {
	nodeID, ok := ctx.Value(NodeIDKey).(string)
	return nodeID, ok
}

// GetRole извлекает роль из контекста запроса
func GetRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}
