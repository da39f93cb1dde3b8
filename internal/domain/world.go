package domain

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Object - размещенный на карте интерактивный объект (event)
type Object struct {
	ID   int      `json:"id"`
	Name string   `json:"name"`
	Pos  Position `json:"pos"`

	// Note - исходная заметка объекта с тегами <evc_...>
	Note string `json:"-"`

	// HideWhen - условие над self-switch'ами (A..D), при котором объект скрыт.
	// Пусто - объект не зависит от переключателей.
	HideWhen string `json:"hideWhen,omitempty"`

	// Erased - объект стерт до конца визита
	Erased bool `json:"erased"`
	// Hidden - объект скрыт условием HideWhen
	Hidden bool `json:"hidden"`
}

// Active - объект участвует в игре (не стерт и не скрыт)
func (o *Object) Active() bool {
	return !o.Erased && !o.Hidden
}

// GameMap - живое состояние загруженной карты на время одного визита.
type GameMap struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// Objects в порядке размещения
	Objects []*Object `json:"objects"`

	ObjectRegistry map[int]*Object `json:"-"`
}

// NewGameMap создает пустую карту с инициализированным реестром
func NewGameMap(id int, name string, width, height int) *GameMap {
	return &GameMap{
		ID:             id,
		Name:           name,
		Width:          width,
		Height:         height,
		Objects:        make([]*Object, 0),
		ObjectRegistry: make(map[int]*Object),
	}
}
