package sections

import (
	"fmt"

	"eventchance/internal/tags"
)

// ErrMalformedDisableMode - disable_mode без вида и слота
var ErrMalformedDisableMode = tags.ErrMalformedDisableMode

// ConfigError - ошибка настройки объекта карты. Загрузка карты прерывается.
type ConfigError struct {
	MapID    int
	ObjectID int
	Err      error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("map %d, object %d: %v", e.MapID, e.ObjectID, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
