package room

import "errors"

// Error is a custom error type for room session errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Caller-input errors
const (
	ErrNilInput      Error = "input cannot be nil"
	ErrInvalidName   Error = "display name must be between 1 and 16 characters"
	ErrInvalidCode   Error = "join code must be between 1 and 6 characters"
	ErrInvalidID     Error = "identifiers must be non-zero"
	ErrUnknownOption Error = "option is not available to this player"
)

// Resolution errors
const (
	ErrRoomNotFound    Error = "room not found"
	ErrPlayerNotInRoom Error = "player is not a member of the room"
)

// Phase and role errors
const (
	ErrWrongPhase       Error = "action not allowed in the current room phase"
	ErrNotOwner         Error = "only the room owner can do this"
	ErrNotEnoughPlayers Error = "not enough players to start a match"
	ErrAlreadySubmitted Error = "finisher already submitted this round"
)

// Internal errors
const (
	ErrCorruptRoom Error = "room state is corrupted"
	ErrIDExhausted Error = "could not allocate a unique identifier"
)

// Constructor errors
const (
	ErrNilConfig         Error = "config cannot be nil"
	ErrNilRoomRepo       Error = "room repository cannot be nil"
	ErrNilPromptCorpus   Error = "prompt corpus cannot be nil or empty"
	ErrNilFinisherCorpus Error = "finisher corpus cannot be nil or empty"
	ErrNilShuffler       Error = "shuffler cannot be nil"
	ErrNilClock          Error = "clock cannot be nil"
	ErrNilIDGenerator    Error = "identifier generator cannot be nil"
)

// IsValidation reports whether the error is the caller's fault: malformed or
// out-of-range input that will never succeed on retry.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNilInput) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidCode) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrUnknownOption)
}

// IsNotFound reports whether the room, join code or membership did not resolve.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrPlayerNotInRoom)
}

// IsPrecondition reports whether an otherwise valid action hit a room or
// caller in the wrong phase, the wrong role, or a double submission.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrWrongPhase) ||
		errors.Is(err, ErrNotOwner) ||
		errors.Is(err, ErrNotEnoughPlayers) ||
		errors.Is(err, ErrAlreadySubmitted)
}
