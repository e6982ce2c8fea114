package identgen

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/lackeysgame/lackeys/internal/common/identgen Generator

// Generator produces identifiers for rooms, players and join codes. Values
// are random and non-guessable but not checked for uniqueness here; callers
// are expected to check against live entities and retry.
type Generator interface {
	// NewID returns a new non-zero numeric identifier
	NewID() uint32

	// NewJoinCode returns a new uppercase alphanumeric join code
	NewJoinCode() string
}

const (
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength  = 6
)

// Config for the rand-backed generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandomGenerator implements Generator using math/rand
type RandomGenerator struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new rand-backed generator
func New(cfg *Config) *RandomGenerator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &RandomGenerator{
		random: rand.New(source),
	}
}

// NewID returns a new non-zero numeric identifier. Zero is reserved as the
// "no id" value on the wire.
func (g *RandomGenerator) NewID() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		if id := g.random.Uint32(); id != 0 {
			return id
		}
	}
}

// NewJoinCode returns a new uppercase alphanumeric join code
func (g *RandomGenerator) NewJoinCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var sb strings.Builder
	sb.Grow(codeLength)
	for i := 0; i < codeLength; i++ {
		sb.WriteByte(codeCharset[g.random.Intn(len(codeCharset))])
	}

	return sb.String()
}
