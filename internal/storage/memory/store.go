// Package memory - хранилище self-switch'ей в памяти процесса.
// Переживает перезапуск только через save-файл (Snapshot/Restore).
package memory

import (
	"context"
	"sort"
	"sync"

	"eventchance/internal/domain"
	"eventchance/internal/storage"
)

type Store struct {
	mu       sync.RWMutex
	switches map[domain.SwitchKey]bool
}

func New() *Store {
	return &Store{switches: make(map[domain.SwitchKey]bool)}
}

func (s *Store) SetSwitch(ctx context.Context, key domain.SwitchKey, value bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := storage.ValidateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.switches[key] = value
	return nil
}

// GetSwitch: нет ключа - false
func (s *Store) GetSwitch(ctx context.Context, key domain.SwitchKey) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.switches[key], nil
}

// ListSwitches сортирует по объекту и слоту
func (s *Store) ListSwitches(ctx context.Context, mapID int) ([]domain.SwitchState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]domain.SwitchState, 0)
	for key, value := range s.switches {
		if key.MapID == mapID {
			out = append(out, domain.SwitchState{SwitchKey: key, Value: value})
		}
	}
	s.mu.RUnlock()

	sortStates(out)
	return out, nil
}

// Snapshot возвращает все переключатели (для save-файла)
func (s *Store) Snapshot() []domain.SwitchState {
	s.mu.RLock()
	out := make([]domain.SwitchState, 0, len(s.switches))
	for key, value := range s.switches {
		out = append(out, domain.SwitchState{SwitchKey: key, Value: value})
	}
	s.mu.RUnlock()

	sortStates(out)
	return out
}

// Restore заменяет содержимое хранилища снимком
func (s *Store) Restore(states []domain.SwitchState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.switches = make(map[domain.SwitchKey]bool, len(states))
	for _, st := range states {
		s.switches[st.SwitchKey] = st.Value
	}
}

func (s *Store) Close() error {
	return nil
}

func sortStates(states []domain.SwitchState) {
	sort.Slice(states, func(i, j int) bool {
		a, b := states[i], states[j]
		if a.MapID != b.MapID {
			return a.MapID < b.MapID
		}
		if a.ObjectID != b.ObjectID {
			return a.ObjectID < b.ObjectID
		}
		return a.Slot < b.Slot
	})
}
