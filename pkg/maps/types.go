// Package maps описывает данные карт (как они лежат в файлах) и их загрузку.
package maps

// Map - документ карты. Объекты в порядке размещения: этот порядок
// определяет порядок бросков при разрешении секций.
type Map struct {
	ID      int         `json:"id" jsonschema:"required,minimum=1"`
	Name    string      `json:"name" jsonschema:"required"`
	Width   int         `json:"width" jsonschema:"required,minimum=1"`
	Height  int         `json:"height" jsonschema:"required,minimum=1"`
	Objects []MapObject `json:"objects" jsonschema:"required"`
}

// MapObject - интерактивный объект (event), размещенный на карте.
type MapObject struct {
	ID   int    `json:"id" jsonschema:"required,minimum=1"`
	Name string `json:"name,omitempty"`
	X    int    `json:"x" jsonschema:"minimum=0"`
	Y    int    `json:"y" jsonschema:"minimum=0"`

	// Note - текст с тегами, например "<evc_section:towns1><evc_chance:90>"
	Note string `json:"note,omitempty" jsonschema:"description=Free text with <evc_*> tags"`

	// HideWhen - условие над self-switch'ами A..D, например "A" или "A && !B"
	HideWhen string `json:"hideWhen,omitempty" jsonschema:"description=Boolean expression over self-switches A-D that hides the object"`
}
