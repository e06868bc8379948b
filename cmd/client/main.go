package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/spawnsync/internal/client/api"
	"github.com/iudanet/spawnsync/internal/client/cli"
	"github.com/iudanet/spawnsync/internal/client/iocli"
	"github.com/iudanet/spawnsync/internal/client/replication"
	"github.com/iudanet/spawnsync/internal/client/storage/boltdb"
	"github.com/iudanet/spawnsync/internal/codec"
	"github.com/iudanet/spawnsync/internal/config"
	"github.com/iudanet/spawnsync/internal/session"
	"github.com/iudanet/spawnsync/internal/spawner"
	"github.com/iudanet/spawnsync/internal/storage/file"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	scenePath := flag.String("scene", "", "Scene fixture with the live spawners (JSON)")
	serverURL := flag.String("server", "", "Server URL (default: $SPAWNSYNC_SERVER_URL)")
	cachePath := flag.String("cache", "", "Path to local snapshot cache (default: $SPAWNSYNC_CACHE_PATH)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *cachePath != "" {
		cfg.CachePath = *cachePath
	}

	logger := cfg.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger, stdio, *scenePath, args[0], args[1:])
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			cli.PrintUsage(stdio)
		}
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	stdio iocli.IO,
	scenePath string,
	command string,
	args []string,
) error {
	scene, err := loadScene(scenePath)
	if err != nil {
		return err
	}

	boltStorage, err := boltdb.New(ctx, cfg.CachePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	clock, err := replication.LoadClock(ctx, boltStorage)
	if err != nil {
		return err
	}

	sess := session.New(scene, cfg.Policy(), logger)
	files := file.New(cfg.DataDir, codec.New(logger), logger)
	service := replication.NewService(
		api.NewClient(cfg.ServerURL),
		sess,
		boltStorage,
		boltStorage,
		boltStorage,
		clock,
		logger,
	)

	return cli.New(stdio, service, sess, files, cfg.DefaultFile, cfg.HostKey, logger).Run(ctx, command, args)
}

// loadScene читает сцену-фикстуру; без -scene используется пустая сцена
func loadScene(path string) (*spawner.Scene, error) {
	if path == "" {
		return &spawner.Scene{}, nil
	}

	// #nosec G304 -- путь задан пользователем явно
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}
	defer f.Close()

	return spawner.LoadScene(f)
}

func printVersion() {
	fmt.Printf("SpawnSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
