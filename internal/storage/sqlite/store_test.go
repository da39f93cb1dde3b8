package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"eventchance/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "switches.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSwitchUpsert(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	key := domain.SwitchKey{MapID: 4, ObjectID: 2, Slot: domain.SlotB}

	require.NoError(t, store.SetSwitch(ctx, key, true))
	v, err := store.GetSwitch(ctx, key)
	require.NoError(t, err)
	assert.True(t, v)

	require.NoError(t, store.SetSwitch(ctx, key, false))
	v, err = store.GetSwitch(ctx, key)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestGetUnknownSwitchIsOff(t *testing.T) {
	store := openTestStore(t)
	v, err := store.GetSwitch(context.Background(), domain.SwitchKey{MapID: 1, ObjectID: 1, Slot: domain.SlotA})
	require.NoError(t, err)
	assert.False(t, v)
}

func TestListSwitches(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.SetSwitch(ctx, domain.SwitchKey{MapID: 1, ObjectID: 3, Slot: domain.SlotA}, true))
	require.NoError(t, store.SetSwitch(ctx, domain.SwitchKey{MapID: 1, ObjectID: 1, Slot: domain.SlotD}, false))
	require.NoError(t, store.SetSwitch(ctx, domain.SwitchKey{MapID: 2, ObjectID: 1, Slot: domain.SlotA}, true))

	list, err := store.ListSwitches(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ObjectID)
	assert.Equal(t, domain.SlotD, list[0].Slot)
	assert.False(t, list[0].Value)
	assert.Equal(t, 3, list[1].ObjectID)
	assert.True(t, list[1].Value)
}

func TestSetSwitchRejectsInvalidSlot(t *testing.T) {
	store := openTestStore(t)
	err := store.SetSwitch(context.Background(), domain.SwitchKey{MapID: 1, ObjectID: 1, Slot: "Z"}, true)
	assert.Error(t, err)
}
