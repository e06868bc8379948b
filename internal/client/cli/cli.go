// Package cli реализует команды клиента spawnsync.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/spawnsync/internal/client/iocli"
	"github.com/iudanet/spawnsync/internal/client/replication"
	"github.com/iudanet/spawnsync/internal/codec"
	"github.com/iudanet/spawnsync/internal/session"
	"github.com/iudanet/spawnsync/internal/spawner"
	"github.com/iudanet/spawnsync/internal/storage/file"
)

// ErrUsage неизвестная команда или неверные аргументы
var ErrUsage = errors.New("invalid usage")

// Cli команды клиента поверх одной сессии синхронизации
type Cli struct {
	io          iocli.IO
	replication replication.Service
	session     *session.Session
	interceptor *session.Interceptor
	collector   *spawner.Collector
	files       *file.Store
	codec       *codec.Codec
	logger      *slog.Logger
	now         func() time.Time
	defaultFile string
	hostKey     string
}

// New создает CLI. defaultFile используется командами работы с файлами, когда имя не задано.
// hostKey может быть пустым, тогда login host спросит ключ интерактивно.
func New(
	io iocli.IO,
	replicationService replication.Service,
	sess *session.Session,
	files *file.Store,
	defaultFile string,
	hostKey string,
	logger *slog.Logger,
) *Cli {
	collector := spawner.NewCollector()
	return &Cli{
		io:          io,
		replication: replicationService,
		session:     sess,
		interceptor: session.NewInterceptor(sess, collector, logger),
		collector:   collector,
		files:       files,
		codec:       codec.New(logger),
		logger:      logger,
		now:         time.Now,
		defaultFile: defaultFile,
		hostKey:     hostKey,
	}
}

// Run выполняет команду; args не включают имя команды
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "capture":
		return c.runCapture(ctx)
	case "save":
		return c.runSave(ctx, args)
	case "load":
		return c.runLoad(ctx, args)
	case "inspect":
		return c.runInspect(args)
	case "files":
		return c.runFiles()
	case "push":
		return c.runPush(ctx, args)
	case "pull":
		return c.runPull(ctx, args)
	case "history":
		return c.runHistory(ctx, args)
	case "maps":
		return c.runMaps(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

// PrintUsage выводит справку по командам
func PrintUsage(io iocli.IO) {
	io.Println("spawnsync - item spawn synchronisation client")
	io.Println()
	io.Println("Usage:")
	io.Println("  spawnsync [OPTIONS] COMMAND [ARGS]")
	io.Println()
	io.Println("Options:")
	io.Println("  -version              Show version information")
	io.Println("  -scene PATH           Scene fixture with the live spawners (JSON)")
	io.Println("  -server URL           Server URL (default: $SPAWNSYNC_SERVER_URL)")
	io.Println("  -cache PATH           Local snapshot cache (default: $SPAWNSYNC_CACHE_PATH)")
	io.Println()
	io.Println("Commands:")
	io.Println("  login host|client     Get an access token (host requires the host key)")
	io.Println("  logout                Forget the access token")
	io.Println("  status                Show node, token and cache status")
	io.Println("  capture               Trigger every spawner of the scene and record the output")
	io.Println("  save <map> [-file F | -default]")
	io.Println("                        Capture and write the spawn table to the data directory")
	io.Println("  load [file] [-lock]   Load a saved table (default: $SPAWNSYNC_DEFAULT_FILE) and replay it")
	io.Println("  inspect [file]        Print a saved table")
	io.Println("  files                 List saved tables")
	io.Println("  push <map> [-file F | -default]")
	io.Println("                        Publish a captured (or saved) table to the server")
	io.Println("  pull <map> [-lock] [-cached]")
	io.Println("                        Fetch the latest table and replay it on the scene")
	io.Println("  history <map> [-limit N]")
	io.Println("                        Show published snapshots of a map")
	io.Println("  maps                  List maps with published snapshots")
	io.Println()
	io.Println("Examples:")
	io.Println("  spawnsync login host")
	io.Println("  spawnsync -scene skeld.json push Skeld")
	io.Println("  spawnsync -scene skeld.json pull Skeld -lock")
	io.Println("  spawnsync -scene skeld.json save Skeld")
}

// parseArgs разбирает флаги, стоящие в любом месте среди позиционных аргументов
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func (c *Cli) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.io)
	return fs
}

// expectArgs проверяет количество позиционных аргументов
func expectArgs(command string, args []string, n int, usage string) error {
	if len(args) != n {
		return fmt.Errorf("%w: usage: spawnsync %s %s", ErrUsage, command, usage)
	}
	return nil
}

// fileArg возвращает единственный позиционный аргумент или имя файла по умолчанию
func (c *Cli) fileArg(command string, args []string, usage string) (string, error) {
	switch len(args) {
	case 0:
		return c.defaultFile, nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: usage: spawnsync %s %s", ErrUsage, command, usage)
	}
}
