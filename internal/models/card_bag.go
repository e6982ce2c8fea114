package models

// CardBag is a per-room draw pool for one card category. Ids are drawn from
// Available until it is exhausted, then it is refilled with a fresh
// permutation of the full 0..Domain range.
type CardBag struct {
	// Domain is the number of ids in the full card domain
	Domain int

	// Available holds the not-yet-drawn ids of the current cycle
	Available []uint16
}

// Clone returns a deep copy of the bag
func (b *CardBag) Clone() *CardBag {
	if b == nil {
		return nil
	}

	return &CardBag{
		Domain:    b.Domain,
		Available: append([]uint16(nil), b.Available...),
	}
}
