package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/spawnsync/internal/client/iocli"
	"github.com/iudanet/spawnsync/internal/client/replication"
	"github.com/iudanet/spawnsync/internal/codec"
	"github.com/iudanet/spawnsync/internal/models"
	"github.com/iudanet/spawnsync/internal/session"
	"github.com/iudanet/spawnsync/internal/spawner"
	"github.com/iudanet/spawnsync/internal/storage/file"
	"github.com/iudanet/spawnsync/pkg/api"
)

var testNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int { return &v }

const testDefaultFile = "spawn_data.json"

// testScene сцена из двух стартовых спавнеров, один без стабильного ID
func testScene() *spawner.Scene {
	return &spawner.Scene{Name: "Skeld", Items: []*spawner.Static{
		{
			KindName: "CrateSpawner",
			ID:       intPtr(1),
			Pos:      models.Vector3{X: 1},
			OnStart:  true,
			Output:   []models.SpawnedItem{{ItemKind: "Medkit", Rotation: models.IdentityRotation}},
		},
		{
			KindName: "Luggage",
			Pos:      models.Vector3{X: 5},
			OnStart:  true,
			Output: []models.SpawnedItem{
				{ItemKind: "Flashlight", Rotation: models.IdentityRotation},
				{ItemKind: "Battery", Rotation: models.IdentityRotation},
			},
		},
	}}
}

// newTestIO возвращает IOMock, собирающий весь вывод в буфер
func newTestIO(terminal bool) (*iocli.IOMock, *strings.Builder) {
	out := &strings.Builder{}
	return &iocli.IOMock{
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(out, format, a...)
		},
		PrintlnFunc: func(a ...any) {
			fmt.Fprintln(out, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			return out.Write(p)
		},
		IsTerminalFunc: func() bool {
			return terminal
		},
	}, out
}

type testCli struct {
	cli     *Cli
	io      *iocli.IOMock
	out     *strings.Builder
	svc     *replication.ServiceMock
	session *session.Session
	scene   *spawner.Scene
	dir     string
}

func newTestCli(t *testing.T, dir string, hostKey string) *testCli {
	t.Helper()
	return newTestCliWithPolicy(t, dir, hostKey, session.Policy{})
}

func newTestCliWithPolicy(t *testing.T, dir string, hostKey string, policy session.Policy) *testCli {
	t.Helper()

	logger := setupTestLogger()
	mockIO, out := newTestIO(false)
	scene := testScene()
	sess := session.New(scene, policy, logger)
	files := file.New(dir, codec.New(logger), logger)
	svc := &replication.ServiceMock{}

	c := New(mockIO, svc, sess, files, testDefaultFile, hostKey, logger)
	c.now = func() time.Time { return testNow }

	return &testCli{cli: c, io: mockIO, out: out, svc: svc, session: sess, scene: scene, dir: dir}
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	tc := newTestCli(t, t.TempDir(), "")

	err := tc.cli.Run(context.Background(), "register", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		positional []string
		lock       bool
		file       string
		wantErr    bool
	}{
		{name: "positional only", args: []string{"Skeld"}, positional: []string{"Skeld"}},
		{name: "flag after positional", args: []string{"Skeld", "-lock"}, positional: []string{"Skeld"}, lock: true},
		{name: "flag before positional", args: []string{"-lock", "Skeld"}, positional: []string{"Skeld"}, lock: true},
		{
			name:       "flag with value in the middle",
			args:       []string{"Skeld", "-file", "a.json", "extra"},
			positional: []string{"Skeld", "extra"},
			file:       "a.json",
		},
		{name: "unknown flag", args: []string{"Skeld", "-force"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli(t, t.TempDir(), "")
			fs := tc.cli.newFlagSet("test")
			lock := fs.Bool("lock", false, "")
			fileName := fs.String("file", "", "")

			positional, err := parseArgs(fs, tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.positional, positional)
			assert.Equal(t, tt.lock, *lock)
			assert.Equal(t, tt.file, *fileName)
		})
	}
}

func TestCli_Login(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		hostKey    string
		prompted   string
		wantRole   string
		wantKey    string
		wantErr    bool
		wantUsage  bool
		wantPrompt bool
	}{
		{name: "client", args: []string{"client"}, wantRole: api.RoleClient},
		{name: "host with configured key", args: []string{"host"}, hostKey: "secret", wantRole: api.RoleHost, wantKey: "secret"},
		{
			name:       "host prompts for key",
			args:       []string{"host"},
			prompted:   "typed",
			wantRole:   api.RoleHost,
			wantKey:    "typed",
			wantPrompt: true,
		},
		{name: "host with empty key", args: []string{"host"}, wantErr: true, wantPrompt: true},
		{name: "unknown role", args: []string{"admin"}, wantErr: true, wantUsage: true},
		{name: "missing role", args: nil, wantErr: true, wantUsage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli(t, t.TempDir(), tt.hostKey)
			tc.io.ReadPasswordFunc = func(prompt string) (string, error) {
				return tt.prompted, nil
			}
			tc.svc.LoginFunc = func(ctx context.Context, role string, hostKey string) error {
				return nil
			}

			err := tc.cli.Run(context.Background(), "login", tt.args)
			assert.Equal(t, tt.wantPrompt, len(tc.io.ReadPasswordCalls()) == 1)

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantUsage {
					assert.ErrorIs(t, err, ErrUsage)
				}
				assert.Empty(t, tc.svc.LoginCalls())
				return
			}

			require.NoError(t, err)
			require.Len(t, tc.svc.LoginCalls(), 1)
			assert.Equal(t, tt.wantRole, tc.svc.LoginCalls()[0].Role)
			assert.Equal(t, tt.wantKey, tc.svc.LoginCalls()[0].HostKey)
			assert.Contains(t, tc.out.String(), "Logged in as "+tt.wantRole)
		})
	}
}

func TestCli_Login_ServiceError(t *testing.T) {
	tc := newTestCli(t, t.TempDir(), "wrong")
	tc.svc.LoginFunc = func(ctx context.Context, role string, hostKey string) error {
		return errors.New("invalid host key")
	}

	err := tc.cli.Run(context.Background(), "login", []string{"host"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
}

func TestCli_Logout(t *testing.T) {
	tc := newTestCli(t, t.TempDir(), "")
	tc.svc.LogoutFunc = func(ctx context.Context) error { return nil }

	require.NoError(t, tc.cli.Run(context.Background(), "logout", nil))
	assert.Len(t, tc.svc.LogoutCalls(), 1)
	assert.Contains(t, tc.out.String(), "Logged out")
}

func TestCli_Status(t *testing.T) {
	tests := []struct {
		name   string
		status *replication.Status
		want   []string
	}{
		{
			name: "authenticated",
			status: &replication.Status{
				NodeID:         "node-1",
				Role:           api.RoleHost,
				Authenticated:  true,
				TokenExpiresAt: testNow.Add(30 * time.Minute),
				CachedMaps:     []string{"Polus", "Skeld"},
				SessionState:   session.StateLoadedLocked,
				Revision:       7,
			},
			want: []string{"node-1", "host, expires in 30m0s", "Polus, Skeld", "loaded (locked)", "Revision:  7"},
		},
		{
			name:   "expired token",
			status: &replication.Status{NodeID: "node-1", Role: api.RoleClient},
			want:   []string{"expired", "spawnsync login client", "Cached:    none", "empty"},
		},
		{
			name:   "no token",
			status: &replication.Status{NodeID: "node-1"},
			want:   []string{"Token:     none"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli(t, t.TempDir(), "")
			tc.svc.StatusFunc = func(ctx context.Context) (*replication.Status, error) {
				return tt.status, nil
			}

			require.NoError(t, tc.cli.Run(context.Background(), "status", nil))
			for _, want := range tt.want {
				assert.Contains(t, tc.out.String(), want)
			}
		})
	}
}

func TestCli_Capture(t *testing.T) {
	tc := newTestCli(t, t.TempDir(), "")

	require.NoError(t, tc.cli.Run(context.Background(), "capture", nil))
	assert.Contains(t, tc.out.String(), "Captured 2 spawners, 3 items")
	assert.Equal(t, session.StateCaptured, tc.session.State())
}

func TestCli_Capture_ReportsFailedSpawner(t *testing.T) {
	tc := newTestCli(t, t.TempDir(), "")
	tc.scene.Items[1].Err = errors.New("no luggage prefab")

	require.NoError(t, tc.cli.Run(context.Background(), "capture", nil))
	assert.Contains(t, tc.out.String(), "Captured 1 spawners, 1 items")
	assert.Contains(t, tc.out.String(), "no luggage prefab")
}

func TestCli_SaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	host := newTestCli(t, dir, "")

	require.NoError(t, host.cli.Run(context.Background(), "save", []string{"Skeld"}))
	name := file.TimestampedName("Skeld", testNow)
	assert.FileExists(t, filepath.Join(dir, name))
	assert.Contains(t, host.out.String(), "Saved 2 spawners with 3 items")

	require.NoError(t, host.cli.Run(context.Background(), "save", []string{"Skeld", "-file", "skeld.json"}))
	assert.FileExists(t, filepath.Join(dir, "skeld.json"))

	// Второй узел с той же сценой воспроизводит сохраненную таблицу
	client := newTestCliWithPolicy(t, dir, "", session.Policy{DisableLiveSpawn: true})
	require.NoError(t, client.cli.Run(context.Background(), "load", []string{"skeld.json", "-lock"}))

	out := client.out.String()
	assert.Contains(t, out, "Loaded 2 spawners, 2 matched")
	assert.Contains(t, out, "Replayed 3 items from 2 start spawners")
	assert.Contains(t, out, "Session is locked")
	assert.True(t, client.session.IsLocked())
	assert.Equal(t, 3, client.cli.collector.Total())
	for _, sp := range client.scene.Items {
		assert.Zero(t, sp.Triggered(), "replayed spawner must not run its own logic")
	}

	err := client.cli.Run(context.Background(), "load", []string{"skeld.json"})
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrLocked)
}

func TestCli_Load_LiveSpawnLeavesStartSpawnersToScene(t *testing.T) {
	dir := t.TempDir()
	host := newTestCli(t, dir, "")
	require.NoError(t, host.cli.Run(context.Background(), "save", []string{"Skeld", "-file", "skeld.json"}))

	client := newTestCliWithPolicy(t, dir, "", session.Policy{SpawnIfUnmatched: true})
	require.NoError(t, client.cli.Run(context.Background(), "load", []string{"skeld.json"}))

	out := client.out.String()
	assert.Contains(t, out, "Loaded 2 spawners, 2 matched")
	assert.Contains(t, out, "Live spawning is enabled")
	assert.NotContains(t, out, "Replayed")
	assert.Zero(t, client.cli.collector.Total())

	// Сцена запускает спавнер сама, перехватчик отдает записанный вывод
	crate := client.scene.Items[0]
	items, err := client.cli.interceptor.Produce(context.Background(), crate)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Medkit", items[0].ItemKind)
	assert.Zero(t, crate.Triggered())
}

func TestCli_DefaultFile(t *testing.T) {
	dir := t.TempDir()
	host := newTestCli(t, dir, "")

	require.NoError(t, host.cli.Run(context.Background(), "save", []string{"Skeld", "-default"}))
	assert.FileExists(t, filepath.Join(dir, testDefaultFile))

	t.Run("load without a name", func(t *testing.T) {
		tc := newTestCliWithPolicy(t, dir, "", session.Policy{DisableLiveSpawn: true})
		require.NoError(t, tc.cli.Run(context.Background(), "load", []string{"-lock"}))
		assert.Contains(t, tc.out.String(), "Loaded 2 spawners, 2 matched")
		assert.True(t, tc.session.IsLocked())
	})

	t.Run("inspect without a name", func(t *testing.T) {
		tc := newTestCli(t, dir, "")
		tc.io.IsTerminalFunc = func() bool { return true }
		require.NoError(t, tc.cli.Run(context.Background(), "inspect", nil))
		assert.Contains(t, tc.out.String(), testDefaultFile+": 2 spawners, 3 items")
	})

	t.Run("push the default file", func(t *testing.T) {
		tc := newTestCli(t, dir, "")
		tc.svc.PublishFunc = func(ctx context.Context, mapName string) (*replication.PublishResult, error) {
			table := tc.session.Table()
			return &replication.PublishResult{Revision: 1, Spawners: table.Len(), Items: table.ItemCount()}, nil
		}
		require.NoError(t, tc.cli.Run(context.Background(), "push", []string{"Skeld", "-default"}))
		assert.NotContains(t, tc.out.String(), "Captured")
		assert.Contains(t, tc.out.String(), "Published Skeld revision 1 (2 spawners, 3 items)")
		for _, sp := range tc.scene.Items {
			assert.Zero(t, sp.Triggered())
		}
	})

	t.Run("too many names", func(t *testing.T) {
		tc := newTestCli(t, dir, "")
		err := tc.cli.Run(context.Background(), "load", []string{"a.json", "b.json"})
		assert.ErrorIs(t, err, ErrUsage)
	})
}

func TestCli_Save_EmptyScene(t *testing.T) {
	tc := newTestCli(t, t.TempDir(), "")
	tc.scene.Items = nil

	err := tc.cli.Run(context.Background(), "save", []string{"Skeld"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to save")
}

func TestCli_Load_MissingFile(t *testing.T) {
	tc := newTestCli(t, t.TempDir(), "")

	err := tc.cli.Run(context.Background(), "load", []string{"missing.json"})
	require.Error(t, err)
	assert.ErrorIs(t, err, file.ErrFileNotFound)
}

func TestCli_Inspect(t *testing.T) {
	dir := t.TempDir()
	host := newTestCli(t, dir, "")
	require.NoError(t, host.cli.Run(context.Background(), "save", []string{"Skeld", "-file", "skeld.json"}))

	t.Run("pipe gets compact JSON", func(t *testing.T) {
		tc := newTestCli(t, dir, "")
		require.NoError(t, tc.cli.Run(context.Background(), "inspect", []string{"skeld.json"}))

		require.Len(t, tc.io.WriteCalls(), 1)
		out := tc.out.String()
		assert.NotContains(t, out, "\n  ")
		assert.Contains(t, out, "CrateSpawner")
		assert.True(t, strings.HasSuffix(out, "\n"))
	})

	t.Run("terminal gets summary", func(t *testing.T) {
		tc := newTestCli(t, dir, "")
		tc.io.IsTerminalFunc = func() bool { return true }
		require.NoError(t, tc.cli.Run(context.Background(), "inspect", []string{"skeld.json"}))

		out := tc.out.String()
		assert.Empty(t, tc.io.WriteCalls())
		assert.Contains(t, out, "skeld.json: 2 spawners, 3 items")
		assert.Contains(t, out, "#1")
		assert.Contains(t, out, "Flashlight")
	})
}

func TestCli_Files(t *testing.T) {
	dir := t.TempDir()
	tc := newTestCli(t, dir, "")

	require.NoError(t, tc.cli.Run(context.Background(), "files", nil))
	assert.Contains(t, tc.out.String(), "No saved tables")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{"spawners":[]}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"spawners":[]}`), 0o600))
	tc.out.Reset()

	require.NoError(t, tc.cli.Run(context.Background(), "files", nil))
	assert.Equal(t, "a.json\nb.json\n", tc.out.String())
}

func TestCli_Push(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		retried   bool
		wantErr   bool
		wantCalls int
	}{
		{name: "capture and publish", args: []string{"Skeld"}, wantCalls: 1},
		{name: "conflict resolved", args: []string{"Skeld"}, retried: true, wantCalls: 1},
		{name: "saved file", args: []string{"Skeld", "-file", "skeld.json"}, wantCalls: 1},
		{name: "missing saved file", args: []string{"Skeld", "-file", "missing.json"}, wantErr: true},
		{name: "missing map", args: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			seed := newTestCli(t, dir, "")
			require.NoError(t, seed.cli.Run(context.Background(), "save", []string{"Skeld", "-file", "skeld.json"}))

			tc := newTestCli(t, dir, "")
			tc.svc.PublishFunc = func(ctx context.Context, mapName string) (*replication.PublishResult, error) {
				table := tc.session.Table()
				return &replication.PublishResult{
					Revision: 4,
					Spawners: table.Len(),
					Items:    table.ItemCount(),
					Retried:  tt.retried,
				}, nil
			}

			err := tc.cli.Run(context.Background(), "push", tt.args)
			assert.Len(t, tc.svc.PublishCalls(), tt.wantCalls)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Skeld", tc.svc.PublishCalls()[0].MapName)
			assert.Contains(t, tc.out.String(), "Published Skeld revision 4 (2 spawners, 3 items)")
			assert.Equal(t, tt.retried, strings.Contains(tc.out.String(), "revision conflict"))
		})
	}
}

func TestCli_Push_PublishError(t *testing.T) {
	tc := newTestCli(t, t.TempDir(), "")
	tc.svc.PublishFunc = func(ctx context.Context, mapName string) (*replication.PublishResult, error) {
		return nil, replication.ErrHostRoleRequired
	}

	err := tc.cli.Run(context.Background(), "push", []string{"Skeld"})
	require.Error(t, err)
	assert.ErrorIs(t, err, replication.ErrHostRoleRequired)
}

func TestCli_Pull(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		applied     bool
		wantCached  bool
		wantLock    bool
		wantContain string
	}{
		{name: "applied", args: []string{"Skeld"}, applied: true, wantContain: "Applied Skeld revision 9 from node-host"},
		{name: "applied and locked", args: []string{"Skeld", "-lock"}, applied: true, wantLock: true, wantContain: "Live spawning is enabled"},
		{name: "already applied", args: []string{"Skeld"}, wantContain: "Already up to date: Skeld revision 9"},
		{name: "from cache", args: []string{"-cached", "Skeld"}, applied: true, wantCached: true, wantContain: "Applied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCli(t, t.TempDir(), "")
			result := &replication.PullResult{
				NodeID:   "node-host",
				Revision: 9,
				Spawners: 2,
				Matched:  2,
				Applied:  tt.applied,
			}
			tc.svc.PullFunc = func(ctx context.Context, mapName string, lockAfter bool) (*replication.PullResult, error) {
				return result, nil
			}
			tc.svc.ApplyCachedFunc = func(ctx context.Context, mapName string, lockAfter bool) (*replication.PullResult, error) {
				return result, nil
			}

			require.NoError(t, tc.cli.Run(context.Background(), "pull", tt.args))
			assert.Contains(t, tc.out.String(), tt.wantContain)

			if tt.wantCached {
				require.Len(t, tc.svc.ApplyCachedCalls(), 1)
				assert.Empty(t, tc.svc.PullCalls())
				assert.Equal(t, "Skeld", tc.svc.ApplyCachedCalls()[0].MapName)
				return
			}
			require.Len(t, tc.svc.PullCalls(), 1)
			assert.Empty(t, tc.svc.ApplyCachedCalls())
			assert.Equal(t, "Skeld", tc.svc.PullCalls()[0].MapName)
			assert.Equal(t, tt.wantLock, tc.svc.PullCalls()[0].LockAfter)
		})
	}
}

func TestCli_Pull_NoSnapshot(t *testing.T) {
	tc := newTestCli(t, t.TempDir(), "")
	tc.svc.PullFunc = func(ctx context.Context, mapName string, lockAfter bool) (*replication.PullResult, error) {
		return nil, replication.ErrNoSnapshot
	}

	err := tc.cli.Run(context.Background(), "pull", []string{"Skeld"})
	require.Error(t, err)
	assert.ErrorIs(t, err, replication.ErrNoSnapshot)
}

func TestCli_History(t *testing.T) {
	tc := newTestCli(t, t.TempDir(), "")
	tc.svc.HistoryFunc = func(ctx context.Context, mapName string, limit int) ([]api.SnapshotResponse, error) {
		if mapName == "Polus" {
			return nil, nil
		}
		return []api.SnapshotResponse{
			{ID: "snap-2", NodeID: "node-host", Revision: 12, CreatedAt: testNow},
			{ID: "snap-1", NodeID: "node-host", Revision: 3, CreatedAt: testNow.Add(-time.Hour)},
		}, nil
	}

	require.NoError(t, tc.cli.Run(context.Background(), "history", []string{"Skeld", "-limit", "5"}))
	require.Len(t, tc.svc.HistoryCalls(), 1)
	assert.Equal(t, 5, tc.svc.HistoryCalls()[0].Limit)

	out := tc.out.String()
	assert.Contains(t, out, "snap-2")
	assert.Less(t, strings.Index(out, "snap-2"), strings.Index(out, "snap-1"))

	tc.out.Reset()
	require.NoError(t, tc.cli.Run(context.Background(), "history", []string{"Polus"}))
	assert.Contains(t, tc.out.String(), "No snapshots for Polus")
}

func TestCli_Maps(t *testing.T) {
	tc := newTestCli(t, t.TempDir(), "")
	maps := []string{}
	tc.svc.RemoteMapsFunc = func(ctx context.Context) ([]string, error) {
		return maps, nil
	}

	require.NoError(t, tc.cli.Run(context.Background(), "maps", nil))
	assert.Contains(t, tc.out.String(), "No maps published yet")

	maps = []string{"Polus", "Skeld"}
	tc.out.Reset()
	require.NoError(t, tc.cli.Run(context.Background(), "maps", nil))
	assert.Equal(t, "Polus\nSkeld\n", tc.out.String())
}

func TestPrintUsage(t *testing.T) {
	mockIO, out := newTestIO(true)
	PrintUsage(mockIO)

	for _, command := range []string{"login", "capture", "save", "load", "inspect", "push", "pull", "history", "maps"} {
		assert.Contains(t, out.String(), "  "+command)
	}
}
