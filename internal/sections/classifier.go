package sections

import (
	"eventchance/internal/domain"

	"github.com/sirupsen/logrus"
)

// DefaultRegularSectionChance - шанс обычной секции без тега шанса.
const DefaultRegularSectionChance = 0.50

// Classifier раскладывает объекты карты по секциям.
type Classifier struct {
	DefaultChance float64
	Log           logrus.FieldLogger
}

// Classify строит состояние секций. Бросков не делает.
//
// Приоритет: эксклюзивная секция, затем обычная, затем одиночный шанс.
// Шанс объекта эксклюзивной секции игнорируется. Шанс обычной секции
// перезаписывается каждым членом, у которого он указан (побеждает последний).
func (c *Classifier) Classify(mapID int, objects []domain.TaggedObject) *MapSectionState {
	state := NewMapSectionState(mapID)

	for _, obj := range objects {
		d := obj.Directives
		tracked := domain.TrackedObject{ID: obj.ID, Mode: d.Mode}

		switch {
		case d.Exclusive != nil:
			g := state.group(d.Exclusive.Category)
			sec := g.section(d.Exclusive.Name)
			sec.Members = append(sec.Members, tracked)

		case d.Section != "":
			sec, created := state.regularSection(d.Section, c.DefaultChance)
			sec.Members = append(sec.Members, tracked)

			if d.Chance != nil {
				if !created && sec.Chance != *d.Chance && c.Log != nil {
					c.Log.WithFields(logrus.Fields{
						"map_id":    mapID,
						"object_id": obj.ID,
						"section":   sec.Name,
						"old":       sec.Chance,
						"new":       *d.Chance,
					}).Debug("regular section chance overwritten by later member")
				}
				sec.Chance = *d.Chance
			}

		case d.Chance != nil:
			state.Standalone = append(state.Standalone, StandaloneObject{
				Object: tracked,
				Chance: *d.Chance,
			})
		}
	}

	return state
}
