package sections

import (
	"context"
	"fmt"

	"eventchance/internal/domain"
)

// SwitchStore хранит персистентные self-switch'и объектов.
type SwitchStore interface {
	SetSwitch(ctx context.Context, key domain.SwitchKey, value bool) error
}

// Eraser стирает объект с текущей карты до конца визита.
type Eraser interface {
	EraseObject(id int) error
}

// Disabler применяет подавление к одному объекту карты.
type Disabler struct {
	MapID    int
	Switches SwitchStore
	Eraser   Eraser

	// OnDisable вызывается после каждого успешного подавления
	OnDisable func(Suppression)
}

// Disable подавляет объект согласно его режиму.
// Erase не переживает перезагрузку карты; switch сохраняется в хранилище.
func (d *Disabler) Disable(ctx context.Context, obj domain.TrackedObject) error {
	switch obj.Mode.Kind {
	case domain.DisableSwitch:
		if d.Switches == nil {
			return fmt.Errorf("disable object %d: switch store is not configured", obj.ID)
		}
		key := domain.SwitchKey{MapID: d.MapID, ObjectID: obj.ID, Slot: obj.Mode.Slot}
		if err := d.Switches.SetSwitch(ctx, key, obj.Mode.Value); err != nil {
			return fmt.Errorf("disable object %d: set switch %s: %w", obj.ID, key, err)
		}
		return nil
	default:
		if d.Eraser == nil {
			return fmt.Errorf("disable object %d: eraser is not configured", obj.ID)
		}
		if err := d.Eraser.EraseObject(obj.ID); err != nil {
			return fmt.Errorf("erase object %d: %w", obj.ID, err)
		}
		return nil
	}
}

// Apply применяет план по порядку. Уже примененные подавления при ошибке
// не откатываются.
func (d *Disabler) Apply(ctx context.Context, plan *Plan) error {
	for _, s := range plan.Suppressions {
		if err := d.Disable(ctx, s.Object); err != nil {
			return err
		}
		if d.OnDisable != nil {
			d.OnDisable(s)
		}
	}
	return nil
}
