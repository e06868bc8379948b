package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/iudanet/spawnsync/pkg/api"
)

// TokenHandler выдает токены доступа хостам и клиентам
type TokenHandler struct {
	logger    *slog.Logger
	hostKey   string
	jwtConfig JWTConfig
}

// NewTokenHandler создает handler выдачи токенов.
// Пустой hostKey запрещает выдачу токенов с ролью host.
func NewTokenHandler(logger *slog.Logger, jwtConfig JWTConfig, hostKey string) *TokenHandler {
	return &TokenHandler{
		logger:    logger,
		jwtConfig: jwtConfig,
		hostKey:   hostKey,
	}
}

// IssueToken обрабатывает POST /api/v1/token
func (h *TokenHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req api.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode token request", "error", err)
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := uuid.Parse(req.NodeID); err != nil {
		sendError(h.logger, w, "node_id must be a UUID", http.StatusBadRequest)
		return
	}

	switch req.Role {
	case api.RoleClient:
	case api.RoleHost:
		if h.hostKey == "" || subtle.ConstantTimeCompare([]byte(req.HostKey), []byte(h.hostKey)) != 1 {
			h.logger.Warn("Host token denied", "node_id", req.NodeID)
			sendError(h.logger, w, "invalid host key", http.StatusForbidden)
			return
		}
	default:
		sendError(h.logger, w, "role must be host or client", http.StatusBadRequest)
		return
	}

	token, expiresIn, err := GenerateAccessToken(h.jwtConfig, req.NodeID, req.Role)
	if err != nil {
		h.logger.Error("Failed to generate access token", "error", err)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Token issued", "node_id", req.NodeID, "role", req.Role)

	sendJSON(h.logger, w, api.TokenResponse{
		AccessToken: token,
		Role:        req.Role,
		ExpiresIn:   expiresIn,
	}, http.StatusOK)
}
