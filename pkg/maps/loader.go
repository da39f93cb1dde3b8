package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// ErrMapNotFound - карты с таким ID нет в источнике
var ErrMapNotFound = errors.New("map not found")

// Source отдает данные карты по ID.
type Source interface {
	Load(ctx context.Context, id int) (*Map, error)
}

// FileName - имя файла карты в каталоге: Map001.json
func FileName(id int) string {
	return fmt.Sprintf("Map%03d.json", id)
}

// Dir читает карты из JSON-файлов каталога.
type Dir struct {
	Path string
}

func (d Dir) Load(ctx context.Context, id int) (*Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(d.Path, FileName(id)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("map %d: %w", id, ErrMapNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read map %d: %w", id, err)
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode map %d: %w", id, err)
	}
	if m.ID != id {
		return nil, fmt.Errorf("map file %s declares id %d", FileName(id), m.ID)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Library - источник карт в памяти
type Library struct {
	mu   sync.RWMutex
	maps map[int]*Map
}

func NewLibrary(maps ...*Map) *Library {
	l := &Library{maps: make(map[int]*Map)}
	for _, m := range maps {
		l.Add(m)
	}
	return l
}

// Add добавляет или заменяет карту
func (l *Library) Add(m *Map) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.maps[m.ID] = m
}

func (l *Library) Load(ctx context.Context, id int) (*Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	m, ok := l.maps[id]
	if !ok {
		return nil, fmt.Errorf("map %d: %w", id, ErrMapNotFound)
	}
	cp := *m
	cp.Objects = append([]MapObject(nil), m.Objects...)
	return &cp, nil
}

// IDs возвращает ID всех карт по возрастанию
func (l *Library) IDs() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]int, 0, len(l.maps))
	for id := range l.maps {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// WriteFile сохраняет карту в каталог (используется инструментами и тестами)
func WriteFile(dir string, m *Map) error {
	if err := m.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode map %d: %w", m.ID, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create maps directory: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, FileName(m.ID)), append(data, '\n'), 0o644)
}
