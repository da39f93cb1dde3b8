// Package storage описывает хранилище персистентных self-switch'ей.
//
// Ключ - (карта, объект, слот), значение - bool. Отсутствующий ключ
// читается как false, как и непереключенный self-switch в игре.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eventchance/internal/domain"
)

// ErrNotConfigured возвращается методами nil-хранилища.
var ErrNotConfigured = errors.New("storage is not configured")

// SwitchStore - общий контракт бэкендов.
type SwitchStore interface {
	SetSwitch(ctx context.Context, key domain.SwitchKey, value bool) error
	GetSwitch(ctx context.Context, key domain.SwitchKey) (bool, error)
	ListSwitches(ctx context.Context, mapID int) ([]domain.SwitchState, error)
	Close() error
}

// Драйверы хранилища
const (
	DriverMemory = "memory"
	DriverBolt   = "bbolt"
	DriverSQLite = "sqlite"
)

// ValidateKey проверяет ключ перед записью.
func ValidateKey(key domain.SwitchKey) error {
	if key.MapID <= 0 {
		return fmt.Errorf("map id must be positive, got %d", key.MapID)
	}
	if key.ObjectID <= 0 {
		return fmt.Errorf("object id must be positive, got %d", key.ObjectID)
	}
	if _, err := domain.ParseSlot(string(key.Slot)); err != nil {
		return err
	}
	return nil
}

// NormalizeDriver приводит имя драйвера к каноническому виду.
func NormalizeDriver(driver string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(driver))
	switch d {
	case DriverMemory, DriverBolt, DriverSQLite:
		return d, nil
	case "bolt":
		return DriverBolt, nil
	default:
		return "", fmt.Errorf("unknown storage driver %q", driver)
	}
}
