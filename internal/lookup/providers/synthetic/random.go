package synthetic

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Random is a seedable, goroutine-safe random source shared by the
// generators.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom seeds a PCG source. A zero seed draws one from the clock.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Between returns a uniform int in [lo, hi].
func (r *Random) Between(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rng.IntN(hi-lo+1)
}

// Coin returns true half the time.
func (r *Random) Coin() bool {
	return r.Between(0, 1) == 1
}

func pick[T any](r *Random, xs []T) T {
	return xs[r.Between(0, len(xs)-1)]
}
