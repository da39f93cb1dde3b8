package sections

import (
	"eventchance/internal/domain"
	"eventchance/internal/random"
)

// Reason - почему объект подавлен
type Reason string

const (
	ReasonChance    Reason = "chance"
	ReasonExclusive Reason = "exclusive"
	ReasonRegular   Reason = "regular"
)

// Suppression - команда подавить один объект.
type Suppression struct {
	Object   domain.TrackedObject `json:"object"`
	Reason   Reason               `json:"reason"`
	Category string               `json:"category,omitempty"`
	Section  string               `json:"section,omitempty"`
}

// Plan - результат розыгрыша: подавления в порядке применения.
type Plan struct {
	State        *MapSectionState `json:"state"`
	Suppressions []Suppression    `json:"suppressions"`
	// Draws - сколько бросков потрачено
	Draws int `json:"draws"`
}

// Suppressed возвращает множество ID подавленных объектов
func (p *Plan) Suppressed() map[int]bool {
	ids := make(map[int]bool, len(p.Suppressions))
	for _, s := range p.Suppressions {
		ids[s.Object.ID] = true
	}
	return ids
}

// Resolve разыгрывает состояние карты.
//
// Порядок бросков фиксирован: одиночные объекты в порядке размещения,
// затем по одному броску на категорию с двумя и более секциями, затем
// по одному броску на обычную секцию в порядке создания.
func Resolve(state *MapSectionState, src random.Source) *Plan {
	plan := &Plan{
		State:        state,
		Suppressions: make([]Suppression, 0),
	}

	draw := func() float64 {
		plan.Draws++
		return src.Float64()
	}

	// 1. Одиночные объекты
	for _, obj := range state.Standalone {
		if draw() < obj.Chance {
			plan.Suppressions = append(plan.Suppressions, Suppression{
				Object: obj.Object,
				Reason: ReasonChance,
			})
		}
	}

	// 2. Эксклюзивные категории: выживает одна секция, равновероятно по секциям
	for _, g := range state.Exclusive {
		if len(g.Sections) < 2 {
			continue
		}

		winnerIdx := random.Index(draw(), len(g.Sections))
		g.Winner = g.Sections[winnerIdx].Name

		for idx, sec := range g.Sections {
			if idx == winnerIdx {
				continue
			}
			for _, member := range sec.Members {
				plan.Suppressions = append(plan.Suppressions, Suppression{
					Object:   member,
					Reason:   ReasonExclusive,
					Category: g.Category,
					Section:  sec.Name,
				})
			}
		}
	}

	// 3. Обычные секции, независимо друг от друга
	for _, sec := range state.Regular {
		sec.Enabled = draw() < sec.Chance
		if sec.Enabled {
			continue
		}
		for _, member := range sec.Members {
			plan.Suppressions = append(plan.Suppressions, Suppression{
				Object:  member,
				Reason:  ReasonRegular,
				Section: sec.Name,
			})
		}
	}

	return plan
}
