package maps

import "fmt"

// Builder предоставляет fluent API для создания карт (тесты, примеры)
type Builder struct {
	m      Map
	nextID int
	err    error
}

// New создает builder для карты
func New(id int, name string) *Builder {
	return &Builder{
		m: Map{
			ID:      id,
			Name:    name,
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			Objects: make([]MapObject, 0),
		},
		nextID: 1,
	}
}

// WithSize устанавливает размер карты
func (b *Builder) WithSize(width, height int) *Builder {
	b.m.Width = width
	b.m.Height = height
	return b
}

// Place размещает объект со следующим свободным ID
func (b *Builder) Place(name string, x, y int, note string) *Builder {
	return b.PlaceWithID(b.nextID, name, x, y, note)
}

// PlaceWithID размещает объект с явным ID
func (b *Builder) PlaceWithID(id int, name string, x, y int, note string) *Builder {
	b.m.Objects = append(b.m.Objects, MapObject{
		ID:   id,
		Name: name,
		X:    x,
		Y:    y,
		Note: note,
	})
	if id >= b.nextID {
		b.nextID = id + 1
	}
	return b
}

// HideWhen задает условие скрытия последнему размещенному объекту
func (b *Builder) HideWhen(cond string) *Builder {
	if len(b.m.Objects) == 0 {
		b.err = fmt.Errorf("map %d: HideWhen called before any object was placed", b.m.ID)
		return b
	}
	b.m.Objects[len(b.m.Objects)-1].HideWhen = cond
	return b
}

// Build проверяет карту и возвращает ее
func (b *Builder) Build() (*Map, error) {
	if b.err != nil {
		return nil, b.err
	}
	m := b.m
	m.Objects = append([]MapObject(nil), b.m.Objects...)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// MustBuild - Build, паникующий на ошибке (для фикстур)
func (b *Builder) MustBuild() *Map {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}
