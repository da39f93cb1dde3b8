package engine

import (
	"eventchance/internal/domain"
	"eventchance/pkg/api"
)

// Instance - одна загруженная карта (один визит).
// Стертые объекты живут только в нем; следующий визит создает новый Instance.
type Instance struct {
	MapID int
	Map   *domain.GameMap

	Seed  int64 // Сид, с которого начался визит
	Visit int   // Номер визита карты, начиная с 1

	Logs []api.LogEntry // Локальные логи загрузки
}

func NewInstance(m *domain.GameMap, seed int64, visit int) *Instance {
	return &Instance{
		MapID: m.ID,
		Map:   m,
		Seed:  seed,
		Visit: visit,
		Logs:  []api.LogEntry{},
	}
}

// Snapshot строит DTO карты для клиента
func (i *Instance) Snapshot() *api.MapSnapshot {
	snap := &api.MapSnapshot{
		MapID:   i.MapID,
		Name:    i.Map.Name,
		Visit:   i.Visit,
		Seed:    i.Seed,
		Width:   i.Map.Width,
		Height:  i.Map.Height,
		Objects: make([]api.ObjectView, 0, len(i.Map.Objects)),
	}

	for _, o := range i.Map.Objects {
		view := api.ObjectView{
			ID:     o.ID,
			Name:   o.Name,
			Erased: o.Erased,
			Hidden: o.Hidden,
		}
		view.Pos.X = o.Pos.X
		view.Pos.Y = o.Pos.Y
		snap.Objects = append(snap.Objects, view)
	}

	// Копия логов, чтобы не было гонки данных
	snap.Logs = make([]api.LogEntry, len(i.Logs))
	copy(snap.Logs, i.Logs)

	return snap
}
