// Package bbolt - хранилище self-switch'ей в файле BoltDB.
package bbolt

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"eventchance/internal/domain"
	"eventchance/internal/storage"

	"go.etcd.io/bbolt"
)

const switchBucket = "self_switches"

// Store - переключатели в бакете BoltDB
type Store struct {
	db *bbolt.DB
}

// Open открывает (или создает) файл базы и бакет
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SetSwitch пишет значение в отдельной транзакции
func (s *Store) SetSwitch(ctx context.Context, key domain.SwitchKey, value bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return storage.ErrNotConfigured
	}
	if err := storage.ValidateKey(key); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(switchBucket))
		if bucket == nil {
			return fmt.Errorf("switch bucket is missing")
		}
		return bucket.Put(switchKey(key), encodeValue(value))
	})
}

// GetSwitch: нет ключа - false
func (s *Store) GetSwitch(ctx context.Context, key domain.SwitchKey) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s == nil || s.db == nil {
		return false, storage.ErrNotConfigured
	}

	var value bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(switchBucket))
		if bucket == nil {
			return fmt.Errorf("switch bucket is missing")
		}
		value = decodeValue(bucket.Get(switchKey(key)))
		return nil
	})
	if err != nil {
		return false, err
	}
	return value, nil
}

// ListSwitches идет курсором по префиксу карты
func (s *Store) ListSwitches(ctx context.Context, mapID int) ([]domain.SwitchState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, storage.ErrNotConfigured
	}

	out := make([]domain.SwitchState, 0)
	prefix := mapPrefix(mapID)
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(switchBucket))
		if bucket == nil {
			return fmt.Errorf("switch bucket is missing")
		}
		c := bucket.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			key, err := parseSwitchKey(k)
			if err != nil {
				return err
			}
			out = append(out, domain.SwitchState{SwitchKey: key, Value: decodeValue(v)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(switchBucket))
		if err != nil {
			return fmt.Errorf("create switch bucket: %w", err)
		}
		return nil
	})
}

// Ключи с ведущими нулями, чтобы курсор шел по порядку объектов
func mapPrefix(mapID int) []byte {
	return []byte(fmt.Sprintf("%010d/", mapID))
}

func switchKey(key domain.SwitchKey) []byte {
	return []byte(fmt.Sprintf("%010d/%010d/%s", key.MapID, key.ObjectID, key.Slot))
}

func parseSwitchKey(raw []byte) (domain.SwitchKey, error) {
	parts := strings.Split(string(raw), "/")
	if len(parts) != 3 {
		return domain.SwitchKey{}, fmt.Errorf("malformed switch key %q", raw)
	}
	mapID, err := strconv.Atoi(parts[0])
	if err != nil {
		return domain.SwitchKey{}, fmt.Errorf("malformed switch key %q: %w", raw, err)
	}
	objectID, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.SwitchKey{}, fmt.Errorf("malformed switch key %q: %w", raw, err)
	}
	return domain.SwitchKey{MapID: mapID, ObjectID: objectID, Slot: domain.Slot(parts[2])}, nil
}

func encodeValue(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

func decodeValue(raw []byte) bool {
	return len(raw) == 1 && raw[0] == 1
}
