package api

import (
	"encoding/json"
)

// Типы сообщений сервера
const (
	TypeMapLoaded = "MAP_LOADED"
	TypeError     = "ERROR"
)

// Действия клиента
const (
	ActionTransfer = "TRANSFER"
	ActionInit     = "INIT"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Отправляется каждый раз, когда завершается загрузка карты.
type ServerResponse struct {
	// Type тип сообщения: MAP_LOADED или ERROR.
	Type string `json:"type"`

	// Map снимок загруженной карты. Пусто для ERROR.
	Map *MapSnapshot `json:"map,omitempty"`

	// Error текст ошибки для ERROR.
	Error string `json:"error,omitempty"`
}

// MapSnapshot - состояние загруженной карты после разрешения секций.
type MapSnapshot struct {
	MapID  int    `json:"mapId"`
	Name   string `json:"name"`
	Visit  int    `json:"visit"`
	Seed   int64  `json:"seed"`
	Width  int    `json:"w"`
	Height int    `json:"h"`

	// Objects все объекты карты, включая стертые и скрытые
	Objects []ObjectView `json:"objects"`

	Logs []LogEntry `json:"logs,omitempty"`
}

// ObjectView это DTO для объекта карты.
type ObjectView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	// Erased - объект стерт до конца визита
	Erased bool `json:"erased,omitempty"`

	// Hidden - объект скрыт условием над self-switch'ами
	Hidden bool `json:"hidden,omitempty"`
}

// Active true, если объект присутствует на карте
func (v ObjectView) Active() bool {
	return !v.Erased && !v.Hidden
}

// LogEntry представляет одну запись в логе загрузки карты.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, SUPPRESS, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// SwitchView - персистентный self-switch объекта
type SwitchView struct {
	MapID    int    `json:"mapId"`
	ObjectID int    `json:"objectId"`
	Slot     string `json:"slot"`
	Value    bool   `json:"value"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия: TRANSFER или INIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// TransferPayload используется для перехода на карту (TRANSFER).
type TransferPayload struct {
	MapID int `json:"mapId"`
}

// ErrorResponse строит сообщение об ошибке
func ErrorResponse(err error) ServerResponse {
	return ServerResponse{Type: TypeError, Error: err.Error()}
}
