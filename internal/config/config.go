// Package config читает настройки процесса из переменных окружения.
package config

import (
	"fmt"
	"strings"

	"eventchance/internal/sections"
	"eventchance/internal/storage"
	"eventchance/internal/tags"

	"github.com/caarlos0/env/v11"
)

// Config - настройки сервера
type Config struct {
	Port string `env:"CD_PORT" envDefault:"8080"`

	// MapsDir - каталог с файлами MapNNN.json. Пусто - встроенные карты.
	MapsDir string `env:"EVC_MAPS_DIR"`

	Store     string `env:"EVC_STORE" envDefault:"memory"`
	StorePath string `env:"EVC_STORE_PATH" envDefault:"switches.db"`
	// SavePath - save-файл для хранилища в памяти. Пусто - без сохранения.
	SavePath string `env:"EVC_SAVE_PATH" envDefault:"save.evcs"`

	DefaultSectionChance float64 `env:"EVC_DEFAULT_SECTION_CHANCE" envDefault:"0.5"`
	TagPrefix            string  `env:"EVC_TAG_PREFIX" envDefault:"evc_"`

	// Seed - мастер-зерно; 0 - случайное
	Seed int64 `env:"EVC_SEED"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load читает конфиг из окружения и проверяет его
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет значения и приводит их к каноническому виду
func (c *Config) Validate() error {
	if c.DefaultSectionChance < 0 || c.DefaultSectionChance > 1 {
		return fmt.Errorf("EVC_DEFAULT_SECTION_CHANCE must be within [0,1], got %v", c.DefaultSectionChance)
	}

	driver, err := storage.NormalizeDriver(c.Store)
	if err != nil {
		return fmt.Errorf("EVC_STORE: %w", err)
	}
	c.Store = driver

	if driver != storage.DriverMemory && strings.TrimSpace(c.StorePath) == "" {
		return fmt.Errorf("EVC_STORE_PATH is required for the %s store", driver)
	}

	if strings.TrimSpace(c.TagPrefix) == "" {
		c.TagPrefix = tags.DefaultPrefix
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("CD_PORT is empty")
	}
	return nil
}

// Default возвращает конфиг со значениями по умолчанию
func Default() Config {
	return Config{
		Port:                 "8080",
		Store:                storage.DriverMemory,
		StorePath:            "switches.db",
		SavePath:             "save.evcs",
		DefaultSectionChance: sections.DefaultRegularSectionChance,
		TagPrefix:            tags.DefaultPrefix,
		LogLevel:             "info",
		LogFormat:            "text",
	}
}
