package engine

import (
	"eventchance/internal/domain"
	"eventchance/pkg/maps"
)

// buildGameMap создает живую карту из данных файла.
// Объекты добавляются в порядке размещения: от него зависит порядок бросков.
func buildGameMap(m *maps.Map) *domain.GameMap {
	gm := domain.NewGameMap(m.ID, m.Name, m.Width, m.Height)

	for _, src := range m.Objects {
		gm.AddObject(&domain.Object{
			ID:       src.ID,
			Name:     src.Name,
			Pos:      domain.Position{X: src.X, Y: src.Y},
			Note:     src.Note,
			HideWhen: src.HideWhen,
		})
	}

	return gm
}
