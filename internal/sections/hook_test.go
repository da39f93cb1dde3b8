package sections

import (
	"context"
	"errors"
	"testing"

	"eventchance/internal/domain"
	"eventchance/internal/engine"
	"eventchance/internal/random"
	"eventchance/internal/storage/memory"
	"eventchance/internal/tags"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHook(store SwitchStore) *Hook {
	return NewHook(tags.NewParser("", nil), newClassifier(), store, nil)
}

func gameMap(notes ...string) *domain.GameMap {
	m := domain.NewGameMap(1, "test", 10, 10)
	for i, note := range notes {
		m.AddObject(&domain.Object{ID: i + 1, Pos: domain.Position{X: i, Y: 0}, Note: note})
	}
	return m
}

func TestHook_TownsScenario(t *testing.T) {
	m := gameMap(
		"<evc_excl_section:towns 1>",
		"<evc_excl_section:towns 2>",
		"<evc_excl_section:towns C><evc_disable_mode:switch A>",
		"",
	)
	store := memory.New()
	sc := &engine.SetupContext{MapID: 1, Map: m, Rng: random.Fixed(0.4)}

	require.NoError(t, newTestHook(store).OnMapSetup(context.Background(), sc))

	// победила "towns 2": 1 стерт, C выключен переключателем
	assert.True(t, m.GetObject(1).Erased)
	assert.False(t, m.GetObject(2).Erased)
	assert.False(t, m.GetObject(3).Erased)
	assert.False(t, m.GetObject(4).Erased)

	switches, err := store.ListSwitches(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.SwitchState{{
		SwitchKey: domain.SwitchKey{MapID: 1, ObjectID: 3, Slot: domain.SlotA},
		Value:     true,
	}}, switches)
}

func TestHook_SwitchModePersists(t *testing.T) {
	store := memory.New()
	m := gameMap("<evc_chance:75><evc_disable_mode:switch B OFF>")
	sc := &engine.SetupContext{MapID: 1, Map: m, Rng: random.Fixed(0.5)}
	hook := newTestHook(store)

	require.NoError(t, hook.OnMapSetup(context.Background(), sc))

	assert.False(t, m.GetObject(1).Erased)
	switches, err := store.ListSwitches(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.SwitchState{{
		SwitchKey: domain.SwitchKey{MapID: 1, ObjectID: 1, Slot: domain.SlotB},
		Value:     false,
	}}, switches)

	plan := hook.LastPlan()
	require.NotNil(t, plan)
	assert.Equal(t, 1, plan.Draws)
}

func TestHook_MalformedDisableModeBeforeAnyDraw(t *testing.T) {
	tests := []string{
		"<evc_disable_mode:switch>",
		"<evc_disable_mode>",
		"<evc_disable_mode:switch E>",
	}

	for _, note := range tests {
		t.Run(note, func(t *testing.T) {
			// объект с ошибкой последний: до него ничего не разыгрывается
			m := gameMap("<evc_chance:50>", "<evc_excl_section:a>", "<evc_excl_section:b>", note)
			seq := random.Fixed(0.1, 0.1, 0.1)
			sc := &engine.SetupContext{MapID: 5, Map: m, Rng: seq}
			hook := newTestHook(nil)

			err := hook.OnMapSetup(context.Background(), sc)

			require.Error(t, err)
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, 5, cfgErr.MapID)
			assert.Equal(t, 4, cfgErr.ObjectID)
			assert.ErrorIs(t, err, ErrMalformedDisableMode)

			assert.Equal(t, 0, seq.Used())
			for _, o := range m.Objects {
				assert.False(t, o.Erased)
			}
			assert.Nil(t, hook.LastPlan())
		})
	}
}

func TestHook_Prepare(t *testing.T) {
	m := gameMap("<evc_section:towns1><evc_chance:90>", "<evc_chance:50>")

	tagged, err := newTestHook(nil).Prepare(1, m.Objects)
	require.NoError(t, err)
	require.Len(t, tagged, 2)

	assert.Equal(t, "towns1", tagged[0].Section)
	require.NotNil(t, tagged[0].Chance)
	assert.Equal(t, 0.9, *tagged[0].Chance)
	assert.Equal(t, 0.5, *tagged[1].Chance)
}
