package engine

import (
	"context"

	"eventchance/internal/domain"
	"eventchance/internal/random"
)

// SetupContext - то, что получает хук при загрузке карты.
type SetupContext struct {
	MapID int
	Visit int

	// Map - живое состояние карты; хук может стирать объекты
	Map *domain.GameMap
	Rng random.Source

	inst *Instance
}

// AddLog пишет запись в лог загрузки карты
func (sc *SetupContext) AddLog(text, logType string) {
	if sc.inst != nil {
		sc.inst.AddLog(text, logType)
	}
}

// SetupHook вызывается после базовой загрузки карты, до расчета видимости.
// Ошибка прерывает загрузку: карта не становится текущей.
type SetupHook interface {
	OnMapSetup(ctx context.Context, sc *SetupContext) error
}

// SetupHookFunc позволяет использовать функцию как хук
type SetupHookFunc func(ctx context.Context, sc *SetupContext) error

func (f SetupHookFunc) OnMapSetup(ctx context.Context, sc *SetupContext) error {
	return f(ctx, sc)
}
