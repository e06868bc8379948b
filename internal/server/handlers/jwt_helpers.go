package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/spawnsync/pkg/api"
)

const tokenIssuer = "spawnsync"

// ErrInvalidClaims токен подписан верно, но его claims не описывают узел с ролью
var ErrInvalidClaims = errors.New("invalid token claims")

// CustomClaims claims токена доступа: узел и его роль
type CustomClaims struct {
	NodeID string `json:"node_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTConfig настройки подписи токенов
type JWTConfig struct {
	// Now источник времени; nil означает time.Now
	Now            func() time.Time
	Secret         []byte
	AccessTokenTTL time.Duration
	// Leeway допустимое расхождение часов при проверке exp и nbf
	Leeway time.Duration
}

func (c JWTConfig) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// GenerateAccessToken подписывает токен узла nodeID с ролью role.
// Возвращает токен и его время жизни в секундах.
func GenerateAccessToken(cfg JWTConfig, nodeID, role string) (string, int64, error) {
	now := cfg.now()
	claims := CustomClaims{
		NodeID: nodeID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   nodeID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, int64(cfg.AccessTokenTTL / time.Second), nil
}

// ValidateAccessToken проверяет подпись, срок и издателя токена и возвращает его claims
func ValidateAccessToken(cfg JWTConfig, tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return cfg.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithTimeFunc(cfg.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims.NodeID == "" || claims.Subject != claims.NodeID {
		return nil, fmt.Errorf("%w: node id does not match subject", ErrInvalidClaims)
	}
	switch claims.Role {
	case api.RoleHost, api.RoleClient:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidClaims, claims.Role)
	}

	return claims, nil
}
