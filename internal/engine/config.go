package engine

import (
	"time"

	"eventchance/internal/random"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят броски на всех картах.
	// Map N Seed = random.ForMap(Seed, N, visit)
	Seed int64
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	seed, err := random.NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return Config{Seed: seed}
}
