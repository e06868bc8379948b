package storage

import (
	"context"
	"time"
)

//go:generate moq -out authstorage_mock.go . AuthStorage

// AuthStorage defines interface for storing the access token issued by the sync server
type AuthStorage interface {
	// SaveAuth stores authentication data
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if a non-expired token exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData токен доступа к серверу синхронизации
type AuthData struct {
	Role        string `json:"role"`         // Role роль токена: host или client
	AccessToken string `json:"access_token"` // AccessToken JWT токен
	ExpiresAt   int64  `json:"expires_at"`   // ExpiresAt unix-время истечения
}

// IsExpired сообщает, истек ли токен к моменту now
func (a *AuthData) IsExpired(now time.Time) bool {
	return now.Unix() >= a.ExpiresAt
}
