package models

import (
	"time"
)

// Player represents a member of a room
type Player struct {
	// ID is the opaque numeric identifier of the player
	ID uint32

	// Name is the trimmed display name of the player
	Name string

	// Score is the number of rounds the player has won in the current match
	Score int

	// LastPollTime is when the player last polled the room
	LastPollTime time.Time

	// Hand contains the finisher card ids the player holds and has not yet submitted
	Hand []uint16
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}

	out := *p
	out.Hand = append([]uint16(nil), p.Hand...)

	return &out
}
