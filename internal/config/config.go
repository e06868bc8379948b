// Package config загружает настройки хоста, клиента и сервера из переменных окружения.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/iudanet/spawnsync/internal/session"
	"github.com/iudanet/spawnsync/internal/validation"
)

// DefaultFileName имя файла данных спавна по умолчанию
const DefaultFileName = "spawn_data.json"

// Config настройки, читаются один раз при старте процесса
type Config struct {
	DefaultFile      string        `env:"SPAWNSYNC_DEFAULT_FILE" envDefault:"spawn_data.json"`
	DataDir          string        `env:"SPAWNSYNC_DATA_DIR" envDefault:"."`
	ServerAddr       string        `env:"SPAWNSYNC_SERVER_ADDR" envDefault:":8080"`
	ServerURL        string        `env:"SPAWNSYNC_SERVER_URL" envDefault:"http://localhost:8080"`
	DBPath           string        `env:"SPAWNSYNC_DB_PATH" envDefault:"spawnsync.db"`
	CachePath        string        `env:"SPAWNSYNC_CACHE_PATH" envDefault:"spawnsync_cache.db"`
	JWTSecret        string        `env:"SPAWNSYNC_JWT_SECRET"`
	HostKey          string        `env:"SPAWNSYNC_HOST_KEY"`
	LogFormat        string        `env:"SPAWNSYNC_LOG_FORMAT" envDefault:"text"`
	LogLevel         string        `env:"SPAWNSYNC_LOG_LEVEL" envDefault:"info"`
	TokenTTL         time.Duration `env:"SPAWNSYNC_TOKEN_TTL" envDefault:"1h"`
	RateLimit        int           `env:"SPAWNSYNC_RATE_LIMIT" envDefault:"60"`
	SnapshotKeep     int           `env:"SPAWNSYNC_SNAPSHOT_KEEP" envDefault:"50"`
	DisableLiveSpawn bool          `env:"SPAWNSYNC_DISABLE_LIVE_SPAWN" envDefault:"false"`
	SpawnIfUnmatched bool          `env:"SPAWNSYNC_SPAWN_IF_UNMATCHED" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load читает и проверяет конфигурацию
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет значения, которые env не может проверить сам
func (c *Config) Validate() error {
	if err := validation.ValidateFileName(c.DefaultFile); err != nil {
		return fmt.Errorf("invalid SPAWNSYNC_DEFAULT_FILE: %w", err)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("SPAWNSYNC_TOKEN_TTL must be positive")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("SPAWNSYNC_RATE_LIMIT must not be negative")
	}
	if c.SnapshotKeep < 0 {
		return fmt.Errorf("SPAWNSYNC_SNAPSHOT_KEEP must not be negative")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Policy возвращает флаги политики для сессии синхронизации
func (c *Config) Policy() session.Policy {
	return session.Policy{
		DisableLiveSpawn: c.DisableLiveSpawn,
		SpawnIfUnmatched: c.SpawnIfUnmatched,
	}
}

// NewLogger создает логгер по настройкам формата и уровня
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return level, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
