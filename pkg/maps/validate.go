package maps

import "fmt"

// Размер карты по умолчанию
const (
	DefaultWidth  = 20
	DefaultHeight = 15
)

// Validate проверяет структурную целостность карты
func (m *Map) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("map id must be positive, got %d", m.ID)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("map %d: invalid size %dx%d", m.ID, m.Width, m.Height)
	}

	seen := make(map[int]bool, len(m.Objects))
	for _, o := range m.Objects {
		if o.ID <= 0 {
			return fmt.Errorf("map %d: object id must be positive, got %d", m.ID, o.ID)
		}
		if seen[o.ID] {
			return fmt.Errorf("map %d: duplicate object id %d", m.ID, o.ID)
		}
		seen[o.ID] = true

		if o.X < 0 || o.X >= m.Width || o.Y < 0 || o.Y >= m.Height {
			return fmt.Errorf("map %d: object %d at [%d,%d] is out of bounds", m.ID, o.ID, o.X, o.Y)
		}
	}
	return nil
}
