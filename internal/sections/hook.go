package sections

import (
	"context"
	"fmt"
	"sync"

	"eventchance/internal/domain"
	"eventchance/internal/engine"
	"eventchance/internal/tags"

	"github.com/sirupsen/logrus"
)

// Hook подключает разрешение секций к загрузке карты.
type Hook struct {
	Parser     *tags.Parser
	Classifier *Classifier
	Switches   SwitchStore
	Log        logrus.FieldLogger

	mu   sync.RWMutex
	last *Plan
}

// NewHook собирает хук из парсера, классификатора и хранилища переключателей
func NewHook(parser *tags.Parser, classifier *Classifier, switches SwitchStore, log logrus.FieldLogger) *Hook {
	return &Hook{
		Parser:     parser,
		Classifier: classifier,
		Switches:   switches,
		Log:        log,
	}
}

// Prepare разбирает теги всех объектов карты.
// Ошибка настройки возвращается до любого броска.
func (h *Hook) Prepare(mapID int, objects []*domain.Object) ([]domain.TaggedObject, error) {
	tagged := make([]domain.TaggedObject, 0, len(objects))

	for _, o := range objects {
		d, err := h.Parser.ParseNote(o.Note)
		if err != nil {
			return nil, &ConfigError{MapID: mapID, ObjectID: o.ID, Err: err}
		}
		tagged = append(tagged, domain.TaggedObject{ID: o.ID, Directives: d})
	}

	return tagged, nil
}

// OnMapSetup: разбор, классификация, розыгрыш, подавление.
func (h *Hook) OnMapSetup(ctx context.Context, sc *engine.SetupContext) error {
	// 1. Разбор тегов
	tagged, err := h.Prepare(sc.MapID, sc.Map.Objects)
	if err != nil {
		return err
	}

	// 2. Классификация и розыгрыш
	state := h.Classifier.Classify(sc.MapID, tagged)
	plan := Resolve(state, sc.Rng)

	h.mu.Lock()
	h.last = plan
	h.mu.Unlock()

	// 3. Подавление
	d := &Disabler{
		MapID:    sc.MapID,
		Switches: h.Switches,
		Eraser:   sc.Map,
		OnDisable: func(s Suppression) {
			sc.AddLog(describe(s), engine.LogSuppress)
		},
	}
	if err := d.Apply(ctx, plan); err != nil {
		return fmt.Errorf("apply suppressions: %w", err)
	}

	if h.Log != nil {
		h.Log.WithFields(logrus.Fields{
			"map_id":     sc.MapID,
			"draws":      plan.Draws,
			"suppressed": len(plan.Suppressions),
			"exclusive":  len(state.Exclusive),
			"regular":    len(state.Regular),
			"standalone": len(state.Standalone),
		}).Info("Sections resolved")
	}
	return nil
}

// LastPlan возвращает план последней загрузки или nil
func (h *Hook) LastPlan() *Plan {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last
}

func describe(s Suppression) string {
	switch s.Reason {
	case ReasonExclusive:
		return fmt.Sprintf("object %d suppressed: exclusive section %q lost in category %q (%s)",
			s.Object.ID, s.Section, s.Category, s.Object.Mode)
	case ReasonRegular:
		return fmt.Sprintf("object %d suppressed: section %q disabled (%s)", s.Object.ID, s.Section, s.Object.Mode)
	default:
		return fmt.Sprintf("object %d suppressed by chance (%s)", s.Object.ID, s.Object.Mode)
	}
}
