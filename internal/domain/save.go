package domain

// SaveGame - снимок сохраняемого состояния: все self-switch'и и текущая карта
type SaveGame struct {
	Seed         int64         `json:"seed"` // Мастер-зерно процесса
	Timestamp    int64         `json:"timestamp"`
	CurrentMapID int           `json:"currentMapId"`
	Switches     []SwitchState `json:"switches"`
	// Visits - сколько раз загружалась каждая карта (ID карты -> визиты)
	Visits map[int]int `json:"visits"`
}
