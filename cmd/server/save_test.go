package main

import (
	"context"
	"path/filepath"
	"testing"

	"eventchance/internal/config"
	"eventchance/internal/domain"
	"eventchance/internal/infrastructure/savefile"
	"eventchance/internal/storage"
	"eventchance/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()
	for _, driver := range []string{storage.DriverMemory, storage.DriverBolt, storage.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := config.Default()
			cfg.Store = driver
			cfg.StorePath = filepath.Join(dir, driver+".db")

			store, err := openStore(cfg)
			require.NoError(t, err)
			defer store.Close()

			key := domain.SwitchKey{MapID: 1, ObjectID: 2, Slot: domain.SlotD}
			require.NoError(t, store.SetSwitch(context.Background(), key, true))
			v, err := store.GetSwitch(context.Background(), key)
			require.NoError(t, err)
			assert.True(t, v)
		})
	}

	cfg := config.Default()
	cfg.Store = "redis"
	_, err := openStore(cfg)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	svc := savefile.NewService(filepath.Join(t.TempDir(), "save.evcs"))
	ctx := context.Background()

	// сохранения еще нет
	saved, err := loadSave(svc, memory.New())
	require.NoError(t, err)
	assert.Nil(t, saved)

	src := memory.New()
	key := domain.SwitchKey{MapID: 2, ObjectID: 3, Slot: domain.SlotB}
	require.NoError(t, src.SetSwitch(ctx, key, true))
	require.NoError(t, writeSave(svc, src, 77, 2, map[int]int{2: 5}))

	dst := memory.New()
	saved, err = loadSave(svc, dst)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, int64(77), saved.Seed)
	assert.Equal(t, 2, saved.CurrentMapID)
	assert.Equal(t, map[int]int{2: 5}, saved.Visits)

	v, err := dst.GetSwitch(ctx, key)
	require.NoError(t, err)
	assert.True(t, v)
}
