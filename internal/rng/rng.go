package rng

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/wheelbot/wheelie/internal/rng Source

// Source provides the random values a spin consumes
type Source interface {
	// Intn returns a non-negative random int in [0, n)
	Intn(n int) int

	// Float64 returns a random float in [0, 1)
	Float64() float64
}

// Config for the default source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Default implements the Source interface using math/rand
type Default struct {
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Default {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Default{
		random: random,
	}
}

// Intn returns a non-negative random int in [0, n)
func (d *Default) Intn(n int) int {
	return d.random.Intn(n)
}

// Float64 returns a random float in [0, 1)
func (d *Default) Float64() float64 {
	return d.random.Float64()
}
