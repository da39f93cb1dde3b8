package tags

import (
	"errors"
	"fmt"
)

// ErrMalformedDisableMode - disable_mode не содержит вида подавления и слота.
var ErrMalformedDisableMode = errors.New("malformed disable_mode")

// TagError описывает тег, который нельзя применить.
type TagError struct {
	Key    string // Ключ тега с префиксом
	Value  string // Сырое значение
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *TagError) Error() string {
	return fmt.Sprintf("tag <%s:%s>: %s", e.Key, e.Value, e.Reason)
}

func (e *TagError) Unwrap() error {
	return e.Err
}
