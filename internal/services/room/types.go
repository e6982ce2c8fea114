package room

import (
	"github.com/lackeysgame/lackeys/internal/cards"
	"github.com/lackeysgame/lackeys/internal/common/clock"
	"github.com/lackeysgame/lackeys/internal/common/identgen"
	"github.com/lackeysgame/lackeys/internal/corpus"
	"github.com/lackeysgame/lackeys/internal/models"
	roomRepo "github.com/lackeysgame/lackeys/internal/repositories/room"
)

// Config holds configuration for the room service
type Config struct {
	// Number of rounds in a match
	RoundTotal int

	// Number of finisher cards a lackey holds
	HandSize int

	// Number of candidate prompts drafted for the leader each round
	PromptChoices int

	// Minimum number of members required to start a match
	MinPlayers int

	// Repository dependencies
	RoomRepo roomRepo.Repository

	// Corpus dependencies
	Prompts   corpus.Provider
	Finishers corpus.Provider

	// Service dependencies
	Shuffler cards.Shuffler
	Clock    clock.Clock
	IDGen    identgen.Generator
}

// CreateRoomInput contains parameters for creating a new room
type CreateRoomInput struct {
	// OwnerName is the display name of the player creating the room
	OwnerName string
}

// CreateRoomOutput contains the result of creating a new room
type CreateRoomOutput struct {
	// RoomID is the identifier of the created room
	RoomID uint32

	// JoinCode is the code other players type to join the room
	JoinCode string

	// PlayerID is the identifier of the owner player
	PlayerID uint32
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	// JoinCode is the code of the room to join
	JoinCode string

	// PlayerName is the display name of the joining player
	PlayerName string
}

// JoinRoomOutput contains the result of joining a room
type JoinRoomOutput struct {
	// RoomID is the identifier of the joined room
	RoomID uint32

	// PlayerID is the identifier of the new player
	PlayerID uint32
}

// PollRoomInput contains parameters for polling a room
type PollRoomInput struct {
	RoomID   uint32
	PlayerID uint32
}

// PollRoomOutput is the read-model a polling client observes
type PollRoomOutput struct {
	// Status is the current room phase tag
	Status models.RoomStatus

	RoundCounter int
	RoundTotal   int

	OwnerID  uint32
	LeaderID uint32

	// Players lists every member in join order
	Players []*PlayerSnapshot

	// PromptText is the selected prompt, present once the leader has picked
	PromptText *string

	// Submissions lists the round's submissions, present only in the
	// round_result phase
	Submissions []*SubmissionSnapshot
}

// PlayerSnapshot is the per-member view inside a poll snapshot
type PlayerSnapshot struct {
	ID    uint32
	Name  string
	Score int

	// LastPollAgeSeconds is how long ago the member last polled
	LastPollAgeSeconds int

	// FinisherReady is nil for the leader; for lackeys it reports whether
	// they have submitted this round
	FinisherReady *bool

	// NextRoundReady is nil outside the round_result phase; otherwise it
	// reports whether the member has acknowledged the result
	NextRoundReady *bool
}

// SubmissionSnapshot is the revealed submission view inside a poll snapshot
type SubmissionSnapshot struct {
	PlayerName   string
	FinisherText string
	IsWinner     bool
}

// AdvanceInput contains parameters for advancing a room
type AdvanceInput struct {
	RoomID   uint32
	PlayerID uint32
}

// AdvanceOutput contains the result of advancing a room
type AdvanceOutput struct {
	// Status is the room phase after the advance
	Status models.RoomStatus
}

// GetOptionsInput contains parameters for listing a player's options
type GetOptionsInput struct {
	RoomID   uint32
	PlayerID uint32
}

// Option is one pickable card
type Option struct {
	// ID is the card id to send back in SubmitPick
	ID uint16

	// Text is the card text
	Text string
}

// GetOptionsOutput contains the cards the player may pick from
type GetOptionsOutput struct {
	Options []*Option
}

// SubmitPickInput contains parameters for applying a card pick
type SubmitPickInput struct {
	RoomID   uint32
	PlayerID uint32
	OptionID uint16
}

// SubmitPickOutput contains the result of applying a card pick
type SubmitPickOutput struct {
	// Status is the room phase after the pick
	Status models.RoomStatus
}
