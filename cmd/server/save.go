package main

import (
	"errors"
	"time"

	"eventchance/internal/domain"
	"eventchance/internal/infrastructure/savefile"
	"eventchance/internal/storage"
	"eventchance/internal/storage/memory"
	"eventchance/pkg/logger"

	"github.com/sirupsen/logrus"
)

// loadSave восстанавливает сохранение. Переключатели восстанавливаются
// только в хранилище в памяти: файловые хранилища персистентны сами.
func loadSave(svc *savefile.Service, store storage.SwitchStore) (*domain.SaveGame, error) {
	save, err := svc.Load()
	if errors.Is(err, savefile.ErrNoSave) {
		logger.Log.WithField("path", svc.Path).Info("No save file, starting fresh")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if mem, ok := store.(*memory.Store); ok {
		mem.Restore(save.Switches)
	}
	logger.Log.WithFields(logrus.Fields{
		"path":     svc.Path,
		"seed":     save.Seed,
		"map_id":   save.CurrentMapID,
		"switches": len(save.Switches),
		"maps":     len(save.Visits),
	}).Info("Save file loaded")
	return save, nil
}

// writeSave пишет сохранение при остановке
func writeSave(svc *savefile.Service, store storage.SwitchStore, seed int64, currentMapID int, visits map[int]int) error {
	save := &domain.SaveGame{
		Seed:         seed,
		Timestamp:    time.Now().Unix(),
		CurrentMapID: currentMapID,
		Switches:     []domain.SwitchState{},
		Visits:       visits,
	}
	if mem, ok := store.(*memory.Store); ok {
		save.Switches = mem.Snapshot()
	}
	return svc.Save(save)
}
