package httpapi

// createRoomRequest is the body of POST /room-create
type createRoomRequest struct {
	OwnerName string `json:"owner_name"`
}

// createRoomResponse is the body returned by POST /room-create
type createRoomResponse struct {
	RoomID   uint32 `json:"room_id"`
	RoomCode string `json:"room_code"`
	PlayerID uint32 `json:"player_id"`
}

// joinRoomRequest is the body of POST /room-join
type joinRoomRequest struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name"`
}

// joinRoomResponse is the body returned by POST /room-join
type joinRoomResponse struct {
	RoomID   uint32 `json:"room_id"`
	PlayerID uint32 `json:"player_id"`
}

// memberRequest identifies the calling member. It is the body of
// POST /room-check, /game-start and /game-options.
type memberRequest struct {
	RoomID   uint32 `json:"room_id"`
	PlayerID uint32 `json:"player_id"`
}

// pickRequest is the body of POST /game-pick
type pickRequest struct {
	RoomID   uint32 `json:"room_id"`
	PlayerID uint32 `json:"player_id"`
	OptionID uint16 `json:"option_id"`
}

// playerPayload is one entry of the snapshot players list
type playerPayload struct {
	PlayerID   uint32 `json:"player_id"`
	PlayerName string `json:"player_name"`
	Score      int    `json:"score"`

	// LastCheck is the seconds since this player last polled the room
	LastCheck int `json:"last_check"`

	// FinisherReady is null for the round leader
	FinisherReady *bool `json:"finisher_ready"`

	// NextRoundReady is null outside the round result phase
	NextRoundReady *bool `json:"next_round_ready"`
}

// submissionPayload is one revealed submission of the round result
type submissionPayload struct {
	PlayerName   string `json:"player_name"`
	FinisherText string `json:"finisher_text"`
	IsWinner     bool   `json:"is_winner"`
}

// snapshotResponse is the body returned by POST /room-check
type snapshotResponse struct {
	RoomStatus   string          `json:"room_status"`
	RoundCounter int             `json:"round_counter"`
	RoundTotal   int             `json:"round_total"`
	OwnerID      uint32          `json:"owner_id"`
	LeaderID     uint32          `json:"leader_id"`
	Players      []playerPayload `json:"players"`

	// PromptText is null until the leader has selected a prompt
	PromptText *string `json:"prompt_text"`

	// Submissions is only present in the round result phase
	Submissions []submissionPayload `json:"submissions,omitempty"`
}

// optionPayload is one pickable card
type optionPayload struct {
	OptionID   uint16 `json:"option_id"`
	OptionText string `json:"option_text"`
}

// optionsResponse is the body returned by POST /game-options
type optionsResponse struct {
	Options []optionPayload `json:"options"`
}

// errorResponse is the body of any non-2xx response
type errorResponse struct {
	Error string `json:"error"`
}
