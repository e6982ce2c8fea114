package cards

import (
	"errors"
	"math"

	"github.com/lackeysgame/lackeys/internal/models"
)

var (
	// ErrEmptyDomain is returned when a bag has no card domain to draw from
	ErrEmptyDomain = errors.New("card domain is empty")

	// ErrDomainTooLarge is returned when a corpus exceeds the card id range
	ErrDomainTooLarge = errors.New("card domain exceeds the id range")
)

// NewBag creates a bag holding a fresh permutation of the full 0..domain id
// range.
func NewBag(domain int, shuffler Shuffler) (*models.CardBag, error) {
	if domain <= 0 {
		return nil, ErrEmptyDomain
	}
	if domain > math.MaxUint16+1 {
		return nil, ErrDomainTooLarge
	}

	return &models.CardBag{
		Domain:    domain,
		Available: shuffler.Permutation(domain),
	}, nil
}

// Draw removes and returns one id from the bag. An exhausted bag is refilled
// with a fresh permutation of the full domain first, so every id is handed out
// once before any id repeats within a cycle. The refill does not account for
// cards currently held by players.
func Draw(bag *models.CardBag, shuffler Shuffler) (uint16, error) {
	if bag == nil || bag.Domain <= 0 {
		return 0, ErrEmptyDomain
	}

	if len(bag.Available) == 0 {
		bag.Available = shuffler.Permutation(bag.Domain)
	}

	last := len(bag.Available) - 1
	id := bag.Available[last]
	bag.Available = bag.Available[:last]

	return id, nil
}

// EnsureFilled draws from the bag until the collection holds target ids,
// returning the grown collection.
func EnsureFilled(collection []uint16, target int, bag *models.CardBag, shuffler Shuffler) ([]uint16, error) {
	for len(collection) < target {
		id, err := Draw(bag, shuffler)
		if err != nil {
			return nil, err
		}
		collection = append(collection, id)
	}

	return collection, nil
}
