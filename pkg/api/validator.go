package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p TransferPayload) Validate() error {
	if p.MapID <= 0 {
		return errors.New("mapId must be positive")
	}
	return nil
}

// DecodePayload разбирает payload команды и проверяет его
func DecodePayload[T Validator](raw json.RawMessage) (T, error) {
	var p T
	if len(raw) == 0 {
		return p, errors.New("payload is required")
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("invalid payload: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}
