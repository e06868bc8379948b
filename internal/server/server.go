// Package server собирает HTTP API архива снимков: маршруты, middleware и жизненный цикл.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/spawnsync/internal/server/handlers"
	"github.com/iudanet/spawnsync/internal/server/middleware"
	"github.com/iudanet/spawnsync/internal/server/storage"
	"github.com/iudanet/spawnsync/pkg/api"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Options зависимости и настройки сервера
type Options struct {
	Storage   storage.SnapshotStorage
	DB        handlers.Pinger
	Logger    *slog.Logger
	Addr      string
	HostKey   string
	Version   string
	JWT       handlers.JWTConfig
	RateLimit int
	Keep      int
}

// Server HTTP сервер архива снимков
type Server struct {
	httpServer *http.Server
	limiter    *middleware.RateLimiter
	logger     *slog.Logger
	addr       string
}

// New создает сервер и регистрирует маршруты
func New(opts Options) (*Server, error) {
	if opts.Storage == nil {
		return nil, errors.New("snapshot storage is required")
	}
	if len(opts.JWT.Secret) == 0 {
		return nil, errors.New("jwt secret is required")
	}

	s := &Server{
		logger: opts.Logger,
		addr:   opts.Addr,
	}
	if opts.RateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(opts.RateLimit, opts.Logger)
	}

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.routes(opts),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return s, nil
}

// Handler возвращает корневой handler со всеми middleware
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) routes(opts Options) http.Handler {
	health := handlers.NewHealthHandler(opts.Logger, opts.DB, opts.Version)
	token := handlers.NewTokenHandler(opts.Logger, opts.JWT, opts.HostKey)
	snapshots := handlers.NewSnapshotHandler(opts.Logger, opts.Storage, opts.Keep)

	limit := func(h http.Handler) http.Handler { return h }
	if s.limiter != nil {
		limit = middleware.RateLimitMiddleware(s.limiter)
	}

	authenticated := func(h http.HandlerFunc, roles ...string) http.Handler {
		return middleware.Chain(h,
			middleware.AuthMiddleware(opts.Logger, opts.JWT),
			middleware.IdentityRecorder,
			middleware.RequireRole(opts.Logger, roles...),
			limit,
		)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", health.Health)
	mux.Handle("POST /api/v1/token", limit(http.HandlerFunc(token.IssueToken)))

	mux.Handle("POST /api/v1/snapshots", authenticated(snapshots.PushSnapshot, api.RoleHost))
	mux.Handle("GET /api/v1/snapshots/{map}", authenticated(snapshots.GetLatest, api.RoleHost, api.RoleClient))
	mux.Handle("GET /api/v1/snapshots/{map}/history", authenticated(snapshots.History, api.RoleHost, api.RoleClient))
	mux.Handle("GET /api/v1/archive/{id}", authenticated(snapshots.GetByID, api.RoleHost, api.RoleClient))
	mux.Handle("GET /api/v1/maps", authenticated(snapshots.ListMaps, api.RoleHost, api.RoleClient))

	return middleware.Chain(mux,
		middleware.LoggingMiddleware(opts.Logger, "/api/v1/health"),
		middleware.RecoveryMiddleware(opts.Logger),
	)
}

// ListenAndServe обслуживает запросы до отмены контекста, затем корректно завершается
func (s *Server) ListenAndServe(ctx context.Context) error {
	defer s.Close()

	serveErr := make(chan error, 1)
	s.logger.Info("Server listening", "addr", s.addr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close освобождает фоновые ресурсы сервера
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}
