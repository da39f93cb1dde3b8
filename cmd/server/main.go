package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventchance/internal/config"
	"eventchance/internal/domain"
	"eventchance/internal/engine"
	"eventchance/internal/infrastructure/savefile"
	"eventchance/internal/sections"
	"eventchance/internal/server"
	"eventchance/internal/tags"
	"eventchance/internal/version"
	"eventchance/pkg/logger"
	"eventchance/pkg/maps"
)

func main() {
	// 1. Парсинг конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}

	var seed int64
	var startMap int
	// Читаем флаг -seed. По умолчанию 0 (значит взять из окружения, сохранения или сгенерировать).
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for EVC_SEED, save file or random)")
	flag.IntVar(&startMap, "map", 0, "Map to load at startup (0 for the saved one)")
	flag.Parse()

	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logger.Log.Info("Starting event chance server...")
	logger.Log.Info(version.String())

	// 2. Хранилище переключателей и сохранение
	store, err := openStore(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to open switch store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Log.WithError(err).Warn("Failed to close switch store")
		}
	}()

	var saves *savefile.Service
	var saved *domain.SaveGame
	if cfg.SavePath != "" {
		saves = savefile.NewService(cfg.SavePath)
	}

	engineCfg := engine.NewConfig()
	switch {
	case seed != 0:
		engineCfg.Seed = seed
		logger.Log.Infof("Using explicit master seed: %d", seed)
	case cfg.Seed != 0:
		engineCfg.Seed = cfg.Seed
		logger.Log.Infof("Using master seed from EVC_SEED: %d", cfg.Seed)
	}

	if saves != nil {
		saved, err = loadSave(saves, store)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to load save file")
		}
		if saved != nil {
			if seed == 0 && cfg.Seed == 0 {
				engineCfg.Seed = saved.Seed
			}
			if startMap == 0 {
				startMap = saved.CurrentMapID
			}
		}
	}
	logger.Log.Infof("Master seed: %d", engineCfg.Seed)

	// 3. Источник карт
	var source maps.Source
	if cfg.MapsDir != "" {
		source = maps.Dir{Path: cfg.MapsDir}
		logger.Log.WithField("dir", cfg.MapsDir).Info("Loading maps from directory")
	} else {
		source = maps.Samples()
		logger.Log.Info("EVC_MAPS_DIR is empty, using built-in sample maps")
	}

	// 4. Ядро и хук секций
	mapService := engine.NewService(engineCfg, source, store)
	hook := sections.NewHook(
		tags.NewParser(cfg.TagPrefix, logger.Log.WithField("component", "tags")),
		&sections.Classifier{
			DefaultChance: cfg.DefaultSectionChance,
			Log:           logger.Log.WithField("component", "classifier"),
		},
		store,
		logger.Log.WithField("component", "sections"),
	)
	mapService.OnSetup(hook)
	if saved != nil {
		mapService.RestoreVisits(saved.Visits)
	}

	if startMap == 0 {
		startMap = 1
	}
	if _, err := mapService.Setup(context.Background(), startMap); err != nil {
		logger.Log.WithError(err).WithField("map_id", startMap).Error("Failed to load start map")
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 5. Запуск сервера
	srv := server.New(mapService, hook, store, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.WithError(err).Fatal("Server start error")
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Warn("HTTP shutdown failed")
	}

	if saves != nil {
		if err := writeSave(saves, store, engineCfg.Seed, mapService.CurrentMapID(), mapService.Visits()); err != nil {
			logger.Log.WithError(err).Error("Failed to write save file")
		} else {
			logger.Log.WithField("path", saves.Path).Info("Save file written")
		}
	}

	logger.Log.Info("Done.")
}
