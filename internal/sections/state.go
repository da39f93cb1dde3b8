// Package sections решает, какие объекты карты подавить при ее загрузке.
//
// Разбор идет в три шага: теги объектов классифицируются в секции
// (Classify), секции и одиночные объекты разыгрываются (Resolve), затем
// каждый проигравший объект подавляется через Disabler (Apply).
// Классификация не делает бросков, поэтому повторяема; все броски
// делаются в Resolve в фиксированном порядке.
package sections

import "eventchance/internal/domain"

// RegularSection - обычная секция, которая включается собственным броском.
type RegularSection struct {
	Name    string                 `json:"name"`
	Chance  float64                `json:"chance"`
	Enabled bool                   `json:"enabled"`
	Members []domain.TrackedObject `json:"members"`
}

// ExclusiveSection - одна из конкурирующих секций категории.
type ExclusiveSection struct {
	Name    string                 `json:"name"`
	Members []domain.TrackedObject `json:"members"`
}

// ExclusiveGroup - категория эксклюзивных секций. Секции в порядке появления.
type ExclusiveGroup struct {
	Category string              `json:"category"`
	Sections []*ExclusiveSection `json:"sections"`
	// Winner - выжившая секция после Resolve. Пусто, если розыгрыша не было.
	Winner string `json:"winner,omitempty"`

	byName map[string]*ExclusiveSection
}

// Section ищет секцию по имени
func (g *ExclusiveGroup) Section(name string) *ExclusiveSection {
	return g.byName[name]
}

func (g *ExclusiveGroup) section(name string) *ExclusiveSection {
	if s, ok := g.byName[name]; ok {
		return s
	}
	s := &ExclusiveSection{Name: name}
	g.byName[name] = s
	g.Sections = append(g.Sections, s)
	return s
}

// StandaloneObject - объект с шансом вне любых секций.
type StandaloneObject struct {
	Object domain.TrackedObject `json:"object"`
	Chance float64              `json:"chance"`
}

// MapSectionState - все секции загруженной карты.
// Создается заново при каждой загрузке карты.
type MapSectionState struct {
	MapID      int                `json:"mapId"`
	Standalone []StandaloneObject `json:"standalone"`
	Exclusive  []*ExclusiveGroup  `json:"exclusive"`
	Regular    []*RegularSection  `json:"regular"`

	groups  map[string]*ExclusiveGroup
	regular map[string]*RegularSection
}

// NewMapSectionState создает пустое состояние карты
func NewMapSectionState(mapID int) *MapSectionState {
	return &MapSectionState{
		MapID:      mapID,
		Standalone: make([]StandaloneObject, 0),
		Exclusive:  make([]*ExclusiveGroup, 0),
		Regular:    make([]*RegularSection, 0),
		groups:     make(map[string]*ExclusiveGroup),
		regular:    make(map[string]*RegularSection),
	}
}

// Group возвращает категорию эксклюзивных секций или nil
func (s *MapSectionState) Group(category string) *ExclusiveGroup {
	return s.groups[category]
}

// RegularSection возвращает обычную секцию или nil
func (s *MapSectionState) RegularSection(name string) *RegularSection {
	return s.regular[name]
}

func (s *MapSectionState) group(category string) *ExclusiveGroup {
	if g, ok := s.groups[category]; ok {
		return g
	}
	g := &ExclusiveGroup{
		Category: category,
		Sections: make([]*ExclusiveSection, 0),
		byName:   make(map[string]*ExclusiveSection),
	}
	s.groups[category] = g
	s.Exclusive = append(s.Exclusive, g)
	return g
}

// regularSection создает секцию с шансом по умолчанию при первом обращении
func (s *MapSectionState) regularSection(name string, defaultChance float64) (*RegularSection, bool) {
	if sec, ok := s.regular[name]; ok {
		return sec, false
	}
	sec := &RegularSection{
		Name:    name,
		Chance:  defaultChance,
		Members: make([]domain.TrackedObject, 0),
	}
	s.regular[name] = sec
	s.Regular = append(s.Regular, sec)
	return sec, true
}
