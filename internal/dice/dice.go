package dice

import (
	"math/rand/v2"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/hoopsim/internal/dice Roller

// Roller is the randomness source for one simulation run
type Roller interface {
	// Roll returns a value between 1 and sides inclusive
	Roll(sides int) int

	// Float64 returns a value in [0, 1)
	Float64() float64

	// Chance succeeds with the given percentage, clamped to [0, 100]
	Chance(pct float64) bool

	// Between returns a value in [lo, hi] inclusive
	Between(lo, hi int) int

	// Fork derives an independent roller whose sequence is fixed by this one
	Fork() Roller
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed uint64
}

type roller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed uint64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = uint64(time.Now().UnixNano())
	}

	return &roller{
		random: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.IntN(sides) + 1
}

func (r *roller) Float64() float64 {
	return r.random.Float64()
}

func (r *roller) Chance(pct float64) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return r.random.Float64()*100 < pct
}

func (r *roller) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.random.IntN(hi-lo+1)
}

func (r *roller) Fork() Roller {
	seed := r.random.Uint64()
	if seed == 0 {
		seed = 1
	}
	return New(&Config{Seed: seed})
}
