package cards

import (
	"testing"

	"github.com/lackeysgame/lackeys/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBagHoldsFullDomain(t *testing.T) {
	shuffler := NewShuffler(&Config{Seed: 1})

	bag, err := NewBag(10, shuffler)
	require.NoError(t, err)

	assert.Equal(t, 10, bag.Domain)
	assert.Len(t, bag.Available, 10)

	seen := make(map[uint16]bool)
	for _, id := range bag.Available {
		assert.Less(t, int(id), 10)
		assert.False(t, seen[id], "id %d appears twice in one permutation", id)
		seen[id] = true
	}
}

func TestNewBagRejectsEmptyDomain(t *testing.T) {
	shuffler := NewShuffler(&Config{Seed: 1})

	_, err := NewBag(0, shuffler)
	assert.ErrorIs(t, err, ErrEmptyDomain)
}

func TestDrawExhaustsDomainBeforeRepeating(t *testing.T) {
	const domain = 25
	shuffler := NewShuffler(&Config{Seed: 42})

	bag, err := NewBag(domain, shuffler)
	require.NoError(t, err)

	// Drawing the whole domain yields every id exactly once.
	seen := make(map[uint16]bool)
	for i := 0; i < domain; i++ {
		id, err := Draw(bag, shuffler)
		require.NoError(t, err)
		assert.False(t, seen[id], "id %d repeated within a cycle", id)
		seen[id] = true
	}
	assert.Len(t, seen, domain)
	assert.Empty(t, bag.Available)

	// The next draw triggers a fresh shuffle of the full domain.
	_, err = Draw(bag, shuffler)
	require.NoError(t, err)
	assert.Len(t, bag.Available, domain-1)
}

func TestDrawEmptyDomain(t *testing.T) {
	shuffler := NewShuffler(&Config{Seed: 1})

	_, err := Draw(nil, shuffler)
	assert.ErrorIs(t, err, ErrEmptyDomain)

	_, err = Draw(&models.CardBag{}, shuffler)
	assert.ErrorIs(t, err, ErrEmptyDomain)
}

func TestEnsureFilled(t *testing.T) {
	shuffler := NewShuffler(&Config{Seed: 7})

	bag, err := NewBag(20, shuffler)
	require.NoError(t, err)

	hand, err := EnsureFilled(nil, 8, bag, shuffler)
	require.NoError(t, err)
	assert.Len(t, hand, 8)
	assert.Len(t, bag.Available, 12)

	// A full collection draws nothing.
	same, err := EnsureFilled(hand, 8, bag, shuffler)
	require.NoError(t, err)
	assert.Equal(t, hand, same)
	assert.Len(t, bag.Available, 12)

	// Topping up draws only the difference.
	topped, err := EnsureFilled(hand[:5], 8, bag, shuffler)
	require.NoError(t, err)
	assert.Len(t, topped, 8)
	assert.Len(t, bag.Available, 9)
}

// The refill is blind to cards players still hold: once the domain cycles, a
// held id can be dealt again.
func TestRefillIgnoresHeldCards(t *testing.T) {
	const domain = 4
	shuffler := NewShuffler(&Config{Seed: 3})

	bag, err := NewBag(domain, shuffler)
	require.NoError(t, err)

	held, err := EnsureFilled(nil, domain, bag, shuffler)
	require.NoError(t, err)
	require.Len(t, held, domain)

	next, err := Draw(bag, shuffler)
	require.NoError(t, err)
	assert.Contains(t, held, next)
}
