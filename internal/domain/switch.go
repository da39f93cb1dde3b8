package domain

import "fmt"

// SwitchKey адресует один персистентный self-switch: (карта, объект, слот).
type SwitchKey struct {
	MapID    int  `json:"mapId"`
	ObjectID int  `json:"objectId"`
	Slot     Slot `json:"slot"`
}

func (k SwitchKey) String() string {
	return fmt.Sprintf("%d/%d/%s", k.MapID, k.ObjectID, k.Slot)
}

// SwitchState - значение self-switch'а вместе с ключом (для дампов и сохранений)
type SwitchState struct {
	SwitchKey
	Value bool `json:"value"`
}
