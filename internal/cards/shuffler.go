package cards

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/lackeysgame/lackeys/internal/cards Shuffler

// Shuffler produces random permutations for bag refills
type Shuffler interface {
	// Permutation returns the ids 0..n-1 in a uniformly random order
	Permutation(n int) []uint16
}

// Config for the rand-backed shuffler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandShuffler implements Shuffler using math/rand
type RandShuffler struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewShuffler creates a new rand-backed shuffler
func NewShuffler(cfg *Config) *RandShuffler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &RandShuffler{
		random: rand.New(source),
	}
}

// Permutation returns the ids 0..n-1 in a uniformly random order
func (s *RandShuffler) Permutation(n int) []uint16 {
	ids := make([]uint16, n)
	for i := range ids {
		ids[i] = uint16(i)
	}

	// room mutations are serialized per room, but bags of different rooms
	// share this shuffler
	s.mu.Lock()
	s.random.Shuffle(n, func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	s.mu.Unlock()

	return ids
}
