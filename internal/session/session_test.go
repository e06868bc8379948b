package session

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/spawnsync/internal/codec"
	"github.com/iudanet/spawnsync/internal/models"
	"github.com/iudanet/spawnsync/internal/spawner"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func intPtr(v int) *int { return &v }

func item(kind string) models.SpawnedItem {
	return models.SpawnedItem{ItemKind: kind, Rotation: models.IdentityRotation}
}

func luggage(id *int, pos models.Vector3, output ...models.SpawnedItem) *spawner.Static {
	return &spawner.Static{KindName: "Luggage", ID: id, Pos: pos, Output: output}
}

func scene(spawners ...*spawner.Static) *spawner.Scene {
	return &spawner.Scene{Name: "test", Items: spawners}
}

func record(kind string, id int, pos models.Vector3, items ...models.SpawnedItem) *models.SpawnerRecord {
	return &models.SpawnerRecord{SpawnerKind: kind, SpawnerID: id, SpawnerPosition: pos, Items: items}
}

func TestSession_InitialState(t *testing.T) {
	s := New(scene(), Policy{}, setupTestLogger())

	assert.Equal(t, StateEmpty, s.State())
	assert.False(t, s.IsLocked())
	assert.False(t, s.IsReplaying())
	assert.False(t, s.IsCapturing())
	assert.Nil(t, s.Table())

	_, err := s.EncodedSnapshot()
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestSession_MatchedSpawnersReplay(t *testing.T) {
	a := luggage(intPtr(3), models.Vector3{})
	b := luggage(nil, models.Vector3{X: 5})
	s := New(scene(a, b), Policy{}, setupTestLogger())

	recA := record("Luggage", 3, models.Vector3{}, item("X"))
	recB := record("Luggage", models.NoSpawnerID, models.Vector3{X: 5, Z: 0.005}, item("Y"))

	require.NoError(t, s.Load(context.Background(), &models.SpawnTable{Spawners: []*models.SpawnerRecord{recA, recB}}, false))

	assert.Equal(t, StateLoadedUnlocked, s.State())
	assert.Equal(t, 2, s.MatchedCount())

	d := s.Decision(a)
	assert.Equal(t, ActionReplay, d.Action)
	assert.Equal(t, recA, d.Record)
	assert.NotSame(t, recA, d.Record)

	d = s.Decision(b)
	assert.Equal(t, ActionReplay, d.Action)
	assert.Equal(t, recB, d.Record)
}

func TestSession_LoadKeepsOwnCopy(t *testing.T) {
	sp := luggage(intPtr(1), models.Vector3{})
	s := New(scene(sp), Policy{}, setupTestLogger())

	table := &models.SpawnTable{Spawners: []*models.SpawnerRecord{record("Luggage", 1, models.Vector3{}, item("X"))}}
	require.NoError(t, s.Load(context.Background(), table, true))

	// Вызывающий продолжает менять свою таблицу после загрузки
	table.Spawners[0].Items[0].ItemKind = "Grenade"
	table.Spawners[0].SpawnerPosition.X = 100
	table.Spawners = append(table.Spawners, record("Luggage", 2, models.Vector3{}, item("Y")))

	got := s.Table()
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "X", got.Spawners[0].Items[0].ItemKind)
	assert.Zero(t, got.Spawners[0].SpawnerPosition.X)

	rec, ok := s.Record(sp)
	require.True(t, ok)
	assert.Equal(t, "X", rec.Items[0].ItemKind)
}

func TestSession_GenerationAdvances(t *testing.T) {
	s := New(scene(luggage(intPtr(1), models.Vector3{}, item("X"))), Policy{}, setupTestLogger())
	ctx := context.Background()

	start := s.Generation()

	require.NoError(t, s.Load(ctx, models.NewSpawnTable(), false))
	afterLoad := s.Generation()
	assert.Greater(t, afterLoad, start)

	_, err := s.Capture(ctx)
	require.NoError(t, err)
	afterCapture := s.Generation()
	assert.Greater(t, afterCapture, afterLoad)

	// Отклоненная загрузка поколение не меняет
	require.NoError(t, s.Load(ctx, models.NewSpawnTable(), true))
	locked := s.Generation()
	assert.ErrorIs(t, s.Load(ctx, models.NewSpawnTable(), false), ErrLocked)
	assert.Equal(t, locked, s.Generation())
}

func TestSession_UnmatchedSuppressedWithoutRecords(t *testing.T) {
	sp := luggage(nil, models.Vector3{})

	tests := []struct {
		name   string
		policy Policy
		want   Action
	}{
		{name: "suppress unmatched", policy: Policy{}, want: ActionSuppress},
		{name: "spawn if unmatched", policy: Policy{SpawnIfUnmatched: true}, want: ActionLive},
		{name: "disable live does not matter in replay", policy: Policy{DisableLiveSpawn: true}, want: ActionSuppress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(scene(sp), tt.policy, setupTestLogger())
			require.NoError(t, s.Load(context.Background(), models.NewSpawnTable(), false))

			assert.False(t, s.HasRecord(sp))
			d := s.Decision(sp)
			assert.Equal(t, tt.want, d.Action)
			assert.Nil(t, d.Record)
		})
	}
}

func TestSession_ReloadRebuildsAssociation(t *testing.T) {
	a := luggage(intPtr(1), models.Vector3{})
	b := luggage(intPtr(2), models.Vector3{X: 10})
	s := New(scene(a, b), Policy{}, setupTestLogger())
	ctx := context.Background()

	first := &models.SpawnTable{Spawners: []*models.SpawnerRecord{
		record("Luggage", 1, models.Vector3{}, item("X")),
		record("Luggage", 2, models.Vector3{X: 10}, item("Y")),
	}}
	require.NoError(t, s.Load(ctx, first, false))
	assert.Equal(t, 2, s.MatchedCount())

	recB := record("Luggage", 2, models.Vector3{X: 10}, item("Z"))
	second := &models.SpawnTable{Spawners: []*models.SpawnerRecord{recB}}
	require.NoError(t, s.Load(ctx, second, false))

	assert.Equal(t, 1, s.MatchedCount())
	assert.False(t, s.HasRecord(a))
	assert.Equal(t, ActionSuppress, s.Decision(a).Action)

	got, ok := s.Record(b)
	require.True(t, ok)
	assert.Equal(t, recB, got)
}

func TestSession_LockIsIrreversible(t *testing.T) {
	sp := luggage(intPtr(1), models.Vector3{})
	s := New(scene(sp), Policy{}, setupTestLogger())
	ctx := context.Background()

	locked := &models.SpawnTable{Spawners: []*models.SpawnerRecord{record("Luggage", 1, models.Vector3{}, item("X"))}}
	require.NoError(t, s.Load(ctx, locked, true))
	assert.Equal(t, StateLoadedLocked, s.State())

	before, _ := s.Record(sp)

	tests := []struct {
		table *models.SpawnTable
		name  string
		lock  bool
	}{
		{name: "empty table", table: models.NewSpawnTable()},
		{name: "same table locked", table: locked, lock: true},
		{name: "other table", table: &models.SpawnTable{Spawners: []*models.SpawnerRecord{record("Luggage", 1, models.Vector3{}, item("Z"))}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Load(ctx, tt.table, tt.lock)
			assert.ErrorIs(t, err, ErrLocked)

			after, ok := s.Record(sp)
			require.True(t, ok)
			assert.Same(t, before, after)
			assert.Equal(t, locked, s.Table())
		})
	}

	_, err := s.Capture(ctx)
	assert.ErrorIs(t, err, ErrLocked)
	assert.Equal(t, StateLoadedLocked, s.State())

	err = s.ApplyEncodedSnapshot(ctx, []byte(`{"spawners":[]}`), false)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestSession_LoadNilTable(t *testing.T) {
	s := New(scene(), Policy{}, setupTestLogger())
	assert.ErrorIs(t, s.Load(context.Background(), nil, true), ErrNoTable)
	assert.False(t, s.IsLocked())
	assert.Equal(t, StateEmpty, s.State())
}

func TestSession_LoadDiscoveryError(t *testing.T) {
	discoverErr := errors.New("scene not ready")
	d := &spawner.DiscovererMock{
		SpawnersFunc: func(ctx context.Context) ([]spawner.Spawner, error) {
			return nil, discoverErr
		},
	}
	s := New(d, Policy{}, setupTestLogger())

	err := s.Load(context.Background(), models.NewSpawnTable(), true)
	assert.ErrorIs(t, err, discoverErr)
	assert.False(t, s.IsLocked())
	assert.False(t, s.IsReplaying())
}

func TestSession_Capture(t *testing.T) {
	a := luggage(intPtr(4), models.Vector3{X: 1}, item("Suitcase(Clone)"), item("Bag"))
	b := &spawner.Static{KindName: "Shelf", Pos: models.Vector3{Y: 2}}
	s := New(scene(a, b), Policy{}, setupTestLogger())

	result, err := s.Capture(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Spawners)
	assert.Equal(t, 2, result.Items)
	assert.Empty(t, result.Failed)
	assert.Equal(t, StateCaptured, s.State())
	assert.False(t, s.IsCapturing())
	assert.False(t, s.IsReplaying())

	table := s.Table()
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "Luggage", table.Spawners[0].SpawnerKind)
	assert.Equal(t, 4, table.Spawners[0].SpawnerID)
	assert.Equal(t, models.Vector3{X: 1}, table.Spawners[0].SpawnerPosition)
	assert.Equal(t, "Suitcase", table.Spawners[0].Items[0].ItemKind)
	assert.Equal(t, "Bag", table.Spawners[0].Items[1].ItemKind)
	assert.Equal(t, models.NoSpawnerID, table.Spawners[1].SpawnerID)
	assert.Empty(t, table.Spawners[1].Items)

	assert.Equal(t, 1, a.Triggered())
	assert.Equal(t, 1, b.Triggered())

	// Захват связывает спавнеры со своими записями
	rec, ok := s.Record(a)
	require.True(t, ok)
	assert.Equal(t, 4, rec.SpawnerID)
}

func TestSession_CaptureResets(t *testing.T) {
	a := luggage(intPtr(1), models.Vector3{}, item("X"))
	sc := scene(a)
	s := New(sc, Policy{}, setupTestLogger())
	ctx := context.Background()

	_, err := s.Capture(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, s.Table().Len())

	b := luggage(intPtr(2), models.Vector3{X: 3}, item("Y"))
	sc.Items = []*spawner.Static{b}

	_, err = s.Capture(ctx)
	require.NoError(t, err)

	table := s.Table()
	require.Equal(t, 1, table.Len())
	assert.Equal(t, 2, table.Spawners[0].SpawnerID)
	assert.Equal(t, "Y", table.Spawners[0].Items[0].ItemKind)
	assert.False(t, s.HasRecord(a))
}

func TestSession_CaptureAfterLoadLeavesReplay(t *testing.T) {
	a := luggage(intPtr(1), models.Vector3{}, item("X"))
	s := New(scene(a), Policy{}, setupTestLogger())
	ctx := context.Background()

	require.NoError(t, s.Load(ctx, models.NewSpawnTable(), false))
	require.True(t, s.IsReplaying())

	_, err := s.Capture(ctx)
	require.NoError(t, err)
	assert.False(t, s.IsReplaying())
	assert.Equal(t, StateCaptured, s.State())
	assert.Equal(t, ActionLive, s.Decision(a).Action)
}

func TestSession_CaptureTriggerFailures(t *testing.T) {
	good := luggage(intPtr(1), models.Vector3{}, item("X"))
	failing := &spawner.Static{KindName: "Crate", ID: intPtr(2), Err: errors.New("no prefab")}
	panicking := &spawner.SpawnerMock{
		KindFunc:         func() string { return "Barrel" },
		PositionFunc:     func() models.Vector3 { return models.Vector3{Z: 9} },
		StableIDFunc:     func() (int, bool) { return 0, false },
		SpawnOnStartFunc: func() bool { return false },
		TriggerFunc: func(ctx context.Context) ([]models.SpawnedItem, error) {
			panic("nil reference")
		},
	}
	d := &spawner.DiscovererMock{
		SpawnersFunc: func(ctx context.Context) ([]spawner.Spawner, error) {
			return []spawner.Spawner{failing, panicking, good}, nil
		},
	}
	s := New(d, Policy{}, setupTestLogger())

	result, err := s.Capture(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Spawners)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, "Crate", result.Failed[0].SpawnerKind)
	assert.Equal(t, 2, result.Failed[0].SpawnerID)
	assert.Equal(t, "Barrel", result.Failed[1].SpawnerKind)
	assert.Equal(t, models.NoSpawnerID, result.Failed[1].SpawnerID)
	assert.Contains(t, result.Failed[1].Error(), "nil reference")

	table := s.Table()
	require.Equal(t, 1, table.Len())
	assert.Equal(t, 1, table.Spawners[0].SpawnerID)
	assert.False(t, s.HasRecord(failing))
}

func TestSession_CaptureCancelled(t *testing.T) {
	a := luggage(intPtr(1), models.Vector3{}, item("X"))
	s := New(scene(a), Policy{}, setupTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Capture(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.IsCapturing())
	assert.Equal(t, 0, a.Triggered())
}

func TestSession_CaptureRejectsNonFinite(t *testing.T) {
	good := luggage(intPtr(1), models.Vector3{}, item("Medkit"))
	badItem := luggage(intPtr(2), models.Vector3{X: 3}, models.SpawnedItem{
		ItemKind: "Flashlight",
		Position: models.Vector3{Y: math.NaN()},
		Rotation: models.IdentityRotation,
	})
	badSpawner := luggage(intPtr(3), models.Vector3{Z: math.Inf(1)}, item("Battery"))
	s := New(scene(good, badItem, badSpawner), Policy{}, setupTestLogger())

	result, err := s.Capture(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Spawners)
	require.Len(t, result.Failed, 2)
	for _, failed := range result.Failed {
		assert.ErrorIs(t, failed, ErrNonFinite)
	}
	assert.False(t, s.HasRecord(badItem))
	assert.False(t, s.HasRecord(badSpawner))

	// Таблица из конечных координат всегда кодируется
	data, err := s.EncodedSnapshot()
	require.NoError(t, err)
	assert.Contains(t, string(data), "Medkit")
}

func TestCheckFinite(t *testing.T) {
	tests := []struct {
		name    string
		pos     models.Vector3
		items   []models.SpawnedItem
		wantErr bool
	}{
		{name: "finite", items: []models.SpawnedItem{item("X")}},
		{name: "no items"},
		{name: "spawner NaN", pos: models.Vector3{X: math.NaN()}, wantErr: true},
		{name: "item position Inf", items: []models.SpawnedItem{{ItemKind: "X", Position: models.Vector3{Z: math.Inf(-1)}}}, wantErr: true},
		{name: "item rotation NaN", items: []models.SpawnedItem{{ItemKind: "X", Rotation: models.Quaternion{W: math.NaN()}}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkFinite(luggage(nil, tt.pos), tt.items)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNonFinite)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSession_RecordSpawnerOutput(t *testing.T) {
	a := luggage(intPtr(1), models.Vector3{})
	s := New(scene(), Policy{}, setupTestLogger())

	// Вне захвата вывод не записывается
	assert.False(t, s.RecordSpawnerOutput(a, []models.SpawnedItem{item("X")}))
	assert.Nil(t, s.Table())
}

func TestSession_HungTriggerDoesNotBlock(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	hung := &spawner.SpawnerMock{
		KindFunc:         func() string { return "Luggage" },
		PositionFunc:     func() models.Vector3 { return models.Vector3{} },
		StableIDFunc:     func() (int, bool) { return 1, true },
		SpawnOnStartFunc: func() bool { return false },
		TriggerFunc: func(ctx context.Context) ([]models.SpawnedItem, error) {
			close(entered)
			<-release
			return []models.SpawnedItem{item("Late")}, nil
		},
	}
	d := &spawner.DiscovererMock{
		SpawnersFunc: func(ctx context.Context) ([]spawner.Spawner, error) {
			return []spawner.Spawner{hung}, nil
		},
	}
	s := New(d, Policy{}, setupTestLogger())
	ctx := context.Background()

	done := make(chan CaptureResult)
	go func() {
		result, err := s.Capture(ctx)
		assert.NoError(t, err)
		done <- result
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("capture did not trigger spawner")
	}

	assert.True(t, s.IsCapturing())
	assert.Equal(t, ActionLive, s.Decision(hung).Action)

	loaded := &models.SpawnTable{Spawners: []*models.SpawnerRecord{record("Luggage", 1, models.Vector3{}, item("Loaded"))}}
	require.NoError(t, s.Load(ctx, loaded, false))
	assert.False(t, s.IsCapturing())

	close(release)
	result := <-done

	// Результат прерванного захвата отброшен
	assert.Equal(t, 0, result.Spawners)
	assert.Equal(t, loaded, s.Table())
	assert.Equal(t, StateLoadedUnlocked, s.State())

	d2 := s.Decision(hung)
	require.Equal(t, ActionReplay, d2.Action)
	assert.Equal(t, "Loaded", d2.Record.Items[0].ItemKind)
}

func TestSession_DecisionPolicy(t *testing.T) {
	sp := luggage(nil, models.Vector3{})

	tests := []struct {
		name   string
		policy Policy
		want   Action
	}{
		{name: "default live", policy: Policy{}, want: ActionLive},
		{name: "disable live spawn", policy: Policy{DisableLiveSpawn: true}, want: ActionSuppress},
		{name: "spawn if unmatched only", policy: Policy{SpawnIfUnmatched: true}, want: ActionLive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(scene(sp), tt.policy, setupTestLogger())
			assert.Equal(t, tt.want, s.Decision(sp).Action)
			assert.Equal(t, tt.policy, s.Policy())
		})
	}
}

func TestSession_DisableLiveSpawnAllowsCapture(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	observed := make(chan Action, 1)

	var s *Session
	sp := &spawner.SpawnerMock{
		KindFunc:         func() string { return "Luggage" },
		PositionFunc:     func() models.Vector3 { return models.Vector3{} },
		StableIDFunc:     func() (int, bool) { return 0, false },
		SpawnOnStartFunc: func() bool { return false },
		TriggerFunc: func(ctx context.Context) ([]models.SpawnedItem, error) {
			close(entered)
			<-release
			return nil, nil
		},
	}
	d := &spawner.DiscovererMock{
		SpawnersFunc: func(ctx context.Context) ([]spawner.Spawner, error) {
			return []spawner.Spawner{sp}, nil
		},
	}
	s = New(d, Policy{DisableLiveSpawn: true}, setupTestLogger())

	go func() {
		<-entered
		observed <- s.Decision(sp).Action
		close(release)
	}()

	_, err := s.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ActionLive, <-observed)
	assert.Equal(t, ActionSuppress, s.Decision(sp).Action)
}

func TestSession_EncodedSnapshotRoundTrip(t *testing.T) {
	host := luggage(intPtr(3), models.Vector3{}, item("X"))
	hostSession := New(scene(host), Policy{}, setupTestLogger())
	ctx := context.Background()

	_, err := hostSession.Capture(ctx)
	require.NoError(t, err)

	data, err := hostSession.EncodedSnapshot()
	require.NoError(t, err)

	client := luggage(intPtr(3), models.Vector3{X: 100}, item("Different"))
	clientSession := New(scene(client), Policy{}, setupTestLogger())
	require.NoError(t, clientSession.ApplyEncodedSnapshot(ctx, data, true))

	assert.Equal(t, StateLoadedLocked, clientSession.State())
	d := clientSession.Decision(client)
	require.Equal(t, ActionReplay, d.Action)
	assert.Equal(t, "X", d.Record.Items[0].ItemKind)
}

func TestSession_ApplyEncodedSnapshotInvalid(t *testing.T) {
	s := New(scene(), Policy{}, setupTestLogger())

	err := s.ApplyEncodedSnapshot(context.Background(), []byte("not json"), true)
	var decodeErr *codec.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, StateEmpty, s.State())
	assert.False(t, s.IsLocked())
}

func TestSession_ConcurrentDecisionsDuringLoad(t *testing.T) {
	spawners := make([]*spawner.Static, 0, 20)
	records := make([]*models.SpawnerRecord, 0, 20)
	for i := 0; i < 20; i++ {
		pos := models.Vector3{X: float64(i)}
		spawners = append(spawners, luggage(intPtr(i), pos))
		records = append(records, record("Luggage", i, pos, item("X")))
	}
	s := New(scene(spawners...), Policy{}, setupTestLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				for _, sp := range spawners {
					d := s.Decision(sp)
					if d.Action == ActionReplay {
						assert.NotNil(t, d.Record)
					}
				}
			}
		}()
	}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Load(ctx, &models.SpawnTable{Spawners: records}, false)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, s.MatchedCount())
	for _, sp := range spawners {
		assert.Equal(t, ActionReplay, s.Decision(sp).Action)
	}
}

func TestStateAndActionString(t *testing.T) {
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "captured", StateCaptured.String())
	assert.Equal(t, "loaded", StateLoadedUnlocked.String())
	assert.Equal(t, "loaded (locked)", StateLoadedLocked.String())
	assert.Equal(t, "live", ActionLive.String())
	assert.Equal(t, "replay", ActionReplay.String())
	assert.Equal(t, "suppress", ActionSuppress.String())
}
