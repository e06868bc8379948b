package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/spawnsync/internal/config"
	"github.com/iudanet/spawnsync/internal/server"
	"github.com/iudanet/spawnsync/internal/server/handlers"
	"github.com/iudanet/spawnsync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", "", "Listen address (default: $SPAWNSYNC_SERVER_ADDR)")
	dbPath := flag.String("db", "", "Path to the snapshot archive (default: $SPAWNSYNC_DB_PATH)")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*addr, *dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(addr, dbPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if addr != "" {
		cfg.ServerAddr = addr
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if cfg.JWTSecret == "" {
		return errors.New("SPAWNSYNC_JWT_SECRET is required")
	}

	logger := cfg.NewLogger(os.Stderr)
	if cfg.HostKey == "" {
		logger.Warn("SPAWNSYNC_HOST_KEY is empty: host tokens are disabled, snapshots cannot be published")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	schema, err := db.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Options{
		Storage: db,
		DB:      db,
		Logger:  logger,
		Addr:    cfg.ServerAddr,
		HostKey: cfg.HostKey,
		Version: Version,
		JWT: handlers.JWTConfig{
			Secret:         []byte(cfg.JWTSecret),
			AccessTokenTTL: cfg.TokenTTL,
		},
		RateLimit: cfg.RateLimit,
		Keep:      cfg.SnapshotKeep,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("spawnsync server starting",
		"addr", cfg.ServerAddr,
		"db", cfg.DBPath,
		"schema_version", schema,
		"version", Version)

	return srv.ListenAndServe(ctx)
}

func printVersion() {
	fmt.Printf("SpawnSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
