// Package sqlite - хранилище self-switch'ей в SQLite (modernc, без cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"eventchance/internal/domain"
	"eventchance/internal/storage"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS self_switches (
	map_id     INTEGER NOT NULL,
	object_id  INTEGER NOT NULL,
	slot       TEXT    NOT NULL CHECK (slot IN ('A', 'B', 'C', 'D')),
	value      INTEGER NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (map_id, object_id, slot)
);
`

// Store - переключатели в таблице self_switches
type Store struct {
	sqlDB *sql.DB
}

// Open открывает базу и создает схему, если ее нет
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SetSwitch делает upsert одной строки
func (s *Store) SetSwitch(ctx context.Context, key domain.SwitchKey, value bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ErrNotConfigured
	}
	if err := storage.ValidateKey(key); err != nil {
		return err
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO self_switches (map_id, object_id, slot, value, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (map_id, object_id, slot) DO UPDATE SET
	value = excluded.value,
	updated_at = excluded.updated_at
`,
		key.MapID,
		key.ObjectID,
		string(key.Slot),
		boolToInt(value),
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("set switch %s: %w", key, err)
	}
	return nil
}

// GetSwitch: нет строки - false
func (s *Store) GetSwitch(ctx context.Context, key domain.SwitchKey) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s == nil || s.sqlDB == nil {
		return false, storage.ErrNotConfigured
	}

	var value int
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT value FROM self_switches WHERE map_id = ? AND object_id = ? AND slot = ?
`, key.MapID, key.ObjectID, string(key.Slot)).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get switch %s: %w", key, err)
	}
	return value != 0, nil
}

// ListSwitches - ORDER BY объект, слот
func (s *Store) ListSwitches(ctx context.Context, mapID int) ([]domain.SwitchState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, storage.ErrNotConfigured
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT object_id, slot, value FROM self_switches
WHERE map_id = ?
ORDER BY object_id, slot
`, mapID)
	if err != nil {
		return nil, fmt.Errorf("list switches: %w", err)
	}
	defer rows.Close()

	out := make([]domain.SwitchState, 0)
	for rows.Next() {
		var (
			objectID int
			slot     string
			value    int
		)
		if err := rows.Scan(&objectID, &slot, &value); err != nil {
			return nil, fmt.Errorf("scan switch: %w", err)
		}
		out = append(out, domain.SwitchState{
			SwitchKey: domain.SwitchKey{MapID: mapID, ObjectID: objectID, Slot: domain.Slot(slot)},
			Value:     value != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate switches: %w", err)
	}
	return out, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
