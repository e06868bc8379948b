package api

// Роли токенов доступа
const (
	RoleHost   = "host"   // хост публикует снимки
	RoleClient = "client" // клиент только читает снимки
)

// TokenRequest представляет запрос на выдачу токена доступа
type TokenRequest struct {
	Role    string `json:"role"`               // роль: host или client
	NodeID  string `json:"node_id"`            // идентификатор узла (UUID)
	HostKey string `json:"host_key,omitempty"` // общий ключ хоста, обязателен для роли host
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	Role        string `json:"role"`         // выданная роль
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
