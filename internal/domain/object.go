package domain

// DefaultCategory - категория эксклюзивной секции, если в теге указано одно слово.
const DefaultCategory = "default"

// ExclusiveKey адресует эксклюзивную секцию внутри категории.
type ExclusiveKey struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// Directives - разобранные теги одного объекта карты.
// Chance == nil означает, что тега шанса нет.
type Directives struct {
	Chance    *float64      `json:"chance,omitempty"`
	Section   string        `json:"section,omitempty"`
	Exclusive *ExclusiveKey `json:"exclusive,omitempty"`
	Mode      DisableMode   `json:"mode"`
}

// HasSection - объект состоит в какой-либо секции
func (d Directives) HasSection() bool {
	return d.Exclusive != nil || d.Section != ""
}

// TaggedObject - объект карты вместе с его директивами, в порядке размещения.
type TaggedObject struct {
	ID int
	Directives
}

// TrackedObject - минимальная проекция объекта, нужная для разрешения секций.
// Сам объект не хранит, только ссылается на него по ID.
type TrackedObject struct {
	ID   int         `json:"id"`
	Mode DisableMode `json:"mode"`
}
