package main

import (
	"fmt"

	"eventchance/internal/config"
	"eventchance/internal/storage"
	boltstore "eventchance/internal/storage/bbolt"
	"eventchance/internal/storage/memory"
	sqlitestore "eventchance/internal/storage/sqlite"
)

// openStore открывает хранилище переключателей по конфигу
func openStore(cfg config.Config) (storage.SwitchStore, error) {
	switch cfg.Store {
	case storage.DriverMemory:
		return memory.New(), nil
	case storage.DriverBolt:
		s, err := boltstore.Open(cfg.StorePath)
		if err != nil {
			return nil, fmt.Errorf("open bbolt store: %w", err)
		}
		return s, nil
	case storage.DriverSQLite:
		s, err := sqlitestore.Open(cfg.StorePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Store)
	}
}
