package engine

import (
	"context"
	"errors"
	"testing"

	"eventchance/internal/domain"
	"eventchance/internal/random"
	"eventchance/internal/storage/memory"
	"eventchance/pkg/api"
	"eventchance/pkg/maps"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLibrary() *maps.Library {
	return maps.NewLibrary(
		maps.New(1, "Field").
			Place("Slime", 1, 1, "").
			Place("Chest", 2, 2, "").
			HideWhen("A").
			MustBuild(),
	)
}

func TestSetup_EraseRerolledOnReload(t *testing.T) {
	svc := NewService(Config{Seed: 1}, testLibrary(), memory.New())

	// хук стирает слайма только на первом визите
	svc.OnSetup(SetupHookFunc(func(ctx context.Context, sc *SetupContext) error {
		if sc.Visit == 1 {
			return sc.Map.EraseObject(1)
		}
		return nil
	}))

	ctx := context.Background()
	first, err := svc.Setup(ctx, 1)
	require.NoError(t, err)
	assert.True(t, first.Map.GetObject(1).Erased)
	assert.Equal(t, 1, first.Visit)

	second, err := svc.Setup(ctx, 1)
	require.NoError(t, err)
	assert.False(t, second.Map.GetObject(1).Erased)
	assert.Equal(t, 2, second.Visit)
	assert.NotEqual(t, first.Seed, second.Seed)
}

func TestSetup_SwitchHidesOnReload(t *testing.T) {
	store := memory.New()
	svc := NewService(Config{Seed: 1}, testLibrary(), store)

	svc.OnSetup(SetupHookFunc(func(ctx context.Context, sc *SetupContext) error {
		if sc.Visit == 1 {
			key := domain.SwitchKey{MapID: sc.MapID, ObjectID: 2, Slot: domain.SlotA}
			return store.SetSwitch(ctx, key, true)
		}
		return nil
	}))

	ctx := context.Background()
	first, err := svc.Setup(ctx, 1)
	require.NoError(t, err)
	// выставленный хуком переключатель действует уже в этом визите
	assert.True(t, first.Map.GetObject(2).Hidden)

	second, err := svc.Setup(ctx, 1)
	require.NoError(t, err)
	assert.True(t, second.Map.GetObject(2).Hidden)
	assert.False(t, second.Map.GetObject(1).Hidden)
}

func TestSetup_HookErrorAborts(t *testing.T) {
	svc := NewService(Config{Seed: 1}, testLibrary(), nil)
	boom := errors.New("boom")
	svc.OnSetup(SetupHookFunc(func(ctx context.Context, sc *SetupContext) error {
		return boom
	}))

	_, err := svc.Setup(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, svc.Current())
	assert.Equal(t, 0, svc.CurrentMapID())
}

func TestSetup_MapNotFound(t *testing.T) {
	svc := NewService(Config{Seed: 1}, testLibrary(), nil)

	_, err := svc.Setup(context.Background(), 9)
	assert.ErrorIs(t, err, maps.ErrMapNotFound)
}

func TestSetup_DeterministicSeed(t *testing.T) {
	var draws [2]float64
	for i := range draws {
		svc := NewService(Config{Seed: 99}, testLibrary(), nil)
		svc.OnSetup(SetupHookFunc(func(ctx context.Context, sc *SetupContext) error {
			draws[i] = sc.Rng.Float64()
			return nil
		}))
		_, err := svc.Setup(context.Background(), 1)
		require.NoError(t, err)
	}
	assert.Equal(t, draws[0], draws[1])
}

func TestSetup_BroadcastsSnapshot(t *testing.T) {
	svc := NewService(Config{Seed: 1}, testLibrary(), nil)
	ch := svc.Hub.Register("watcher")

	_, err := svc.Setup(context.Background(), 1)
	require.NoError(t, err)

	msg := <-ch
	assert.Equal(t, api.TypeMapLoaded, msg.Type)
	require.NotNil(t, msg.Map)
	assert.Equal(t, 1, msg.Map.MapID)
	assert.Len(t, msg.Map.Objects, 2)
	assert.NotEmpty(t, msg.Map.Logs)
}

func TestSetup_InvalidHideConditionKeepsVisible(t *testing.T) {
	lib := maps.NewLibrary(maps.New(1, "x").Place("o", 0, 0, "").HideWhen("A +").MustBuild())
	svc := NewService(Config{Seed: 1}, lib, memory.New())

	inst, err := svc.Setup(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, inst.Map.GetObject(1).Hidden)
}

func TestSetup_ContinuesRestoredVisits(t *testing.T) {
	svc := NewService(Config{Seed: 11}, testLibrary(), nil)
	svc.RestoreVisits(map[int]int{1: 3, 2: 0})

	inst, err := svc.Setup(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, inst.Visit)
	assert.Equal(t, random.ForMap(11, 1, 4), inst.Seed)

	assert.Equal(t, map[int]int{1: 4}, svc.Visits())
}

func TestSetup_RestartDoesNotReplayDraws(t *testing.T) {
	record := func(svc *MapService) float64 {
		var draw float64
		svc.OnSetup(SetupHookFunc(func(ctx context.Context, sc *SetupContext) error {
			draw = sc.Rng.Float64()
			return nil
		}))
		_, err := svc.Setup(context.Background(), 1)
		require.NoError(t, err)
		return draw
	}

	before := NewService(Config{Seed: 11}, testLibrary(), nil)
	first := record(before)

	// "перезапуск" с тем же зерном и сохраненными визитами
	after := NewService(Config{Seed: 11}, testLibrary(), nil)
	after.RestoreVisits(before.Visits())
	second := record(after)

	assert.NotEqual(t, first, second)
}
