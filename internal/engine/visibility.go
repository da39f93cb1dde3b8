package engine

import (
	"context"
	"fmt"

	"eventchance/internal/domain"
	"eventchance/internal/visibility"
	"eventchance/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SwitchReader читает персистентные self-switch'и
type SwitchReader interface {
	GetSwitch(ctx context.Context, key domain.SwitchKey) (bool, error)
}

// refreshVisibility пересчитывает Hidden у объектов с условием HideWhen.
// Некомпилируемое условие не скрывает объект.
func (s *MapService) refreshVisibility(ctx context.Context, inst *Instance) error {
	for _, o := range inst.Map.Objects {
		if o.HideWhen == "" {
			o.Hidden = false
			continue
		}

		cond, err := s.conds.Get(o.HideWhen)
		if err != nil {
			logger.Log.WithFields(logrus.Fields{
				"map_id":    inst.MapID,
				"object_id": o.ID,
			}).WithError(err).Warn("Invalid hide condition, object stays visible")
			o.Hidden = false
			continue
		}

		values := make(map[domain.Slot]bool, len(domain.Slots))
		if s.switches != nil {
			for _, slot := range domain.Slots {
				key := domain.SwitchKey{MapID: inst.MapID, ObjectID: o.ID, Slot: slot}
				v, err := s.switches.GetSwitch(ctx, key)
				if err != nil {
					return fmt.Errorf("read switch %s: %w", key, err)
				}
				values[slot] = v
			}
		}

		hidden, err := cond.Eval(visibility.EnvFrom(values))
		if err != nil {
			return fmt.Errorf("object %d: %w", o.ID, err)
		}
		o.Hidden = hidden
	}
	return nil
}
