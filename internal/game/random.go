package game

import (
	"crypto/rand"
	"math"
	"math/big"
	mrand "math/rand"
	"sync"
	"time"
)

// RandomSource produces uniformly distributed integers in a closed range.
// Implementations must be safe for concurrent use so one source can be
// shared by many engines.
type RandomSource interface {
	// IntRange returns a value v with min <= v <= max. Callers guarantee min <= max.
	IntRange(min, max int) int
}

// span returns max-min as an unsigned distance; it cannot overflow even when
// the interval covers every int.
func span(min, max int) uint64 {
	return uint64(max) - uint64(min)
}

// cryptoSource draws from crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a RandomSource backed by crypto/rand.
func NewCryptoSource() RandomSource { return cryptoSource{} }

func (cryptoSource) IntRange(min, max int) int {
	n := new(big.Int).SetUint64(span(min, max))
	n.Add(n, big.NewInt(1))
	off, err := rand.Int(rand.Reader, n)
	if err != nil {
		// crypto/rand failing means the platform has no entropy left to give.
		panic("game: crypto/rand: " + err.Error())
	}
	return int(uint64(min) + off.Uint64())
}

// seededSource is a math/rand generator guarded by a mutex.
type seededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource returns a reproducible RandomSource.
// A zero seed is replaced by the current time.
func NewSeededSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &seededSource{rng: mrand.New(mrand.NewSource(seed))}
}

func (s *seededSource) IntRange(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(uint64(min) + uniformUpTo(s.rng.Uint64, span(min, max)))
}

// uniformUpTo returns a value in [0, n] using rejection sampling so the
// result carries no modulo bias.
func uniformUpTo(next func() uint64, n uint64) uint64 {
	if n == math.MaxUint64 {
		return next()
	}
	bound := n + 1
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		if v := next(); v < limit {
			return v % bound
		}
	}
}
