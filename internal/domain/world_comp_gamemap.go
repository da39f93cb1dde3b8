package domain

import "errors"

// ErrObjectNotFound - объекта с таким ID нет на карте
var ErrObjectNotFound = errors.New("object not found")

// GetObject ищет объект по ID
func (m *GameMap) GetObject(id int) *Object {
	if m.ObjectRegistry == nil {
		return nil
	}
	return m.ObjectRegistry[id]
}

// AddObject регистрирует объект в порядке размещения
func (m *GameMap) AddObject(o *Object) {
	if m.ObjectRegistry == nil {
		m.ObjectRegistry = make(map[int]*Object)
	}
	m.Objects = append(m.Objects, o)
	m.ObjectRegistry[o.ID] = o
}

// EraseObject стирает объект до конца визита.
// Повторный вызов для уже стертого объекта ничего не делает.
func (m *GameMap) EraseObject(id int) error {
	o := m.GetObject(id)
	if o == nil {
		return ErrObjectNotFound
	}
	if o.Erased {
		return nil
	}
	o.Erased = true
	return nil
}

// ActiveObjects возвращает объекты, которые не стерты и не скрыты, в порядке размещения
func (m *GameMap) ActiveObjects() []*Object {
	active := make([]*Object, 0, len(m.Objects))
	for _, o := range m.Objects {
		if o.Active() {
			active = append(active, o)
		}
	}
	return active
}
