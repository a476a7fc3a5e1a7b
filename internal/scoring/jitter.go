package scoring

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// JitterSource yields values in [0, 1) that spread a prediction's
// probability within its band.
type JitterSource interface {
	Float64() float64
}

// FixedJitter always returns the same value.
type FixedJitter float64

func (f FixedJitter) Float64() float64 { return float64(f) }

// Midpoint is the jitter used by the "fixed" mode.
const Midpoint FixedJitter = 0.5

// randomJitter wraps a math/rand/v2 generator behind a mutex.
type randomJitter struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *randomJitter) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// NewRandomJitter returns a pseudo-random source. A zero seed picks a
// random one.
func NewRandomJitter(seed uint64) JitterSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &randomJitter{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// JitterFromMode resolves the configured jitter mode ("random" or "fixed").
func JitterFromMode(mode string, seed uint64) (JitterSource, error) {
	switch mode {
	case "", "random":
		return NewRandomJitter(seed), nil
	case "fixed":
		return Midpoint, nil
	default:
		return nil, fmt.Errorf("unknown jitter mode %q (want random or fixed)", mode)
	}
}
