package domain

import (
	"fmt"
	"strings"
)

// DisableKind - способ подавления объекта
type DisableKind uint8

const (
	// DisableErase убирает объект с карты до конца текущего визита.
	DisableErase DisableKind = iota
	// DisableSwitch выставляет персистентный self-switch объекта.
	DisableSwitch
)

// Маппинг для конвертации тега -> Domain
var disableKindByName = map[string]DisableKind{
	"erase":  DisableErase,
	"switch": DisableSwitch,
}

// Маппинг для логов Domain -> String
var disableKindNames = map[DisableKind]string{
	DisableErase:  "erase",
	DisableSwitch: "switch",
}

// ParseDisableKind конвертирует первое слово disable_mode в DisableKind.
// Регистр не важен. ok=false для неизвестных значений.
func ParseDisableKind(s string) (DisableKind, bool) {
	kind, ok := disableKindByName[strings.ToLower(s)]
	return kind, ok
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (k DisableKind) String() string {
	if name, ok := disableKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Slot - буква self-switch'а объекта (A, B, C, D)
type Slot string

const (
	SlotA Slot = "A"
	SlotB Slot = "B"
	SlotC Slot = "C"
	SlotD Slot = "D"
)

// Slots перечисляет все допустимые слоты в каноническом порядке.
var Slots = []Slot{SlotA, SlotB, SlotC, SlotD}

// ParseSlot принимает букву в любом регистре.
func ParseSlot(s string) (Slot, error) {
	slot := Slot(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Slots {
		if slot == known {
			return slot, nil
		}
	}
	return "", fmt.Errorf("unknown self-switch slot %q (expected A, B, C or D)", s)
}

// DisableMode описывает, как именно подавлять объект.
// Нулевое значение - Erase.
type DisableMode struct {
	Kind  DisableKind `json:"kind"`
	Slot  Slot        `json:"slot,omitempty"`
	Value bool        `json:"value,omitempty"`
}

// EraseMode - режим по умолчанию
func EraseMode() DisableMode {
	return DisableMode{Kind: DisableErase}
}

// SwitchMode - режим переключения self-switch'а
func SwitchMode(slot Slot, value bool) DisableMode {
	return DisableMode{Kind: DisableSwitch, Slot: slot, Value: value}
}

func (m DisableMode) String() string {
	if m.Kind != DisableSwitch {
		return m.Kind.String()
	}
	state := "OFF"
	if m.Value {
		state = "ON"
	}
	return fmt.Sprintf("switch %s %s", m.Slot, state)
}
