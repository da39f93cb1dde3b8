// Package engine управляет жизненным циклом карт: загрузка данных,
// хуки загрузки (разрешение секций), видимость и рассылка клиентам.
package engine

import (
	"context"
	"fmt"
	"sync"

	"eventchance/internal/network"
	"eventchance/internal/random"
	"eventchance/internal/visibility"
	"eventchance/pkg/api"
	"eventchance/pkg/logger"
	"eventchance/pkg/maps"

	"github.com/sirupsen/logrus"
)

// MapService загружает карты и хранит текущую.
// Загрузки сериализуются: HTTP и WebSocket вызывают Setup из разных горутин.
type MapService struct {
	mu sync.Mutex

	cfg      Config
	source   maps.Source
	switches SwitchReader
	conds    *visibility.Cache

	hooks   []SetupHook
	visits  map[int]int
	current *Instance

	Hub *network.Broadcaster
}

func NewService(cfg Config, source maps.Source, switches SwitchReader) *MapService {
	return &MapService{
		cfg:      cfg,
		source:   source,
		switches: switches,
		conds:    visibility.NewCache(),
		hooks:    make([]SetupHook, 0),
		visits:   make(map[int]int),
		Hub:      network.NewBroadcaster(),
	}
}

// OnSetup регистрирует хук загрузки. Хуки вызываются в порядке регистрации.
func (s *MapService) OnSetup(hook SetupHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// Visits возвращает копию счетчиков визитов (для сохранения)
func (s *MapService) Visits() map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int]int, len(s.visits))
	for id, n := range s.visits {
		out[id] = n
	}
	return out
}

// RestoreVisits продолжает счетчики визитов из сохранения, чтобы после
// перезапуска броски не повторяли прошлую сессию
func (s *MapService) RestoreVisits(visits map[int]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visits = make(map[int]int, len(visits))
	for id, n := range visits {
		if n > 0 {
			s.visits[id] = n
		}
	}
}

// Setup загружает карту mapID и делает ее текущей.
func (s *MapService) Setup(ctx context.Context, mapID int) (*Instance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1. Базовая загрузка
	data, err := s.source.Load(ctx, mapID)
	if err != nil {
		return nil, fmt.Errorf("setup map %d: %w", mapID, err)
	}

	visit := s.visits[mapID] + 1
	seed := random.ForMap(s.cfg.Seed, mapID, visit)
	inst := NewInstance(buildGameMap(data), seed, visit)

	log := logger.Log.WithFields(logrus.Fields{
		"map_id": mapID,
		"visit":  visit,
		"seed":   seed,
	})

	// 2. Хуки
	sc := &SetupContext{
		MapID: mapID,
		Visit: visit,
		Map:   inst.Map,
		Rng:   random.New(seed),
		inst:  inst,
	}
	for _, hook := range s.hooks {
		if err := hook.OnMapSetup(ctx, sc); err != nil {
			log.WithError(err).Error("Map setup hook failed")
			return nil, fmt.Errorf("setup map %d: %w", mapID, err)
		}
	}

	// 3. Видимость по self-switch'ам (включая выставленные хуками)
	if err := s.refreshVisibility(ctx, inst); err != nil {
		return nil, fmt.Errorf("setup map %d: %w", mapID, err)
	}

	s.visits[mapID] = visit
	s.current = inst
	inst.AddLog(fmt.Sprintf("Map %d (%s) loaded, visit %d", mapID, inst.Map.Name, visit), LogInfo)
	log.WithField("active_objects", len(inst.Map.ActiveObjects())).Info("Map loaded")

	s.Hub.Broadcast(api.ServerResponse{Type: api.TypeMapLoaded, Map: inst.Snapshot()})
	return inst, nil
}

// Current возвращает текущую карту или nil
func (s *MapService) Current() *Instance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentSnapshot возвращает снимок текущей карты или nil
func (s *MapService) CurrentSnapshot() *api.MapSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	return s.current.Snapshot()
}

// CurrentMapID возвращает ID текущей карты или 0
func (s *MapService) CurrentMapID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return 0
	}
	return s.current.MapID
}
