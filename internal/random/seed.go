// Package random содержит источник случайности для разрешения секций.
//
// Источник внедряется явно: в игре это math/rand с мастер-зерном,
// в тестах - фиксированная последовательность бросков.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// Source выдает равномерные значения в [0,1). Один бросок - один вызов.
// *rand.Rand удовлетворяет этому интерфейсу.
type Source interface {
	Float64() float64
}

// NewSeed генерирует зерно через crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New создает детерминированный генератор для зерна
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ForMap выводит зерно визита карты из мастер-зерна:
// xxhash от (MasterSeed, mapID, visit) в little-endian.
func ForMap(masterSeed int64, mapID int, visit int) int64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(masterSeed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(mapID)))
	binary.LittleEndian.PutUint64(buf[16:], uint64(int64(visit)))
	return int64(xxhash.Sum64(buf[:]))
}

// Index превращает бросок в индекс из [0, n): floor(draw * n).
func Index(draw float64, n int) int {
	if n <= 0 {
		return 0
	}
	idx := int(draw * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
