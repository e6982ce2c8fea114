package room

import "context"

// Service defines the interface for room session operations
type Service interface {
	// CreateRoom creates a new room owned by a freshly created player
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a new player to the room matching a join code
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// PollRoom returns the room snapshot for a polling member
	PollRoom(ctx context.Context, input *PollRoomInput) (*PollRoomOutput, error)

	// Advance starts the match, acknowledges a round result, or restarts a
	// finished match, depending on the room phase
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)

	// GetOptions returns the cards the player may currently pick from
	GetOptions(ctx context.Context, input *GetOptionsInput) (*GetOptionsOutput, error)

	// SubmitPick applies the player's card pick to the room
	SubmitPick(ctx context.Context, input *SubmitPickInput) (*SubmitPickOutput, error)
}
