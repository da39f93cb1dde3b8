package random

import "sync"

// Sequence - источник с заранее заданными бросками.
// Когда значения заканчиваются, возвращает Fallback (по умолчанию 0).
type Sequence struct {
	mu       sync.Mutex
	draws    []float64
	pos      int
	Fallback float64
}

// Fixed создает последовательность из перечисленных бросков.
func Fixed(draws ...float64) *Sequence {
	return &Sequence{draws: append([]float64(nil), draws...)}
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.draws) {
		s.pos++
		return s.Fallback
	}
	v := s.draws[s.pos]
	s.pos++
	return v
}

// Used - сколько бросков уже сделано
func (s *Sequence) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}
