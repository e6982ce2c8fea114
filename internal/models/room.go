package models

import (
	"time"
)

// RoomStatus represents the current phase of a room
type RoomStatus string

const (
	// RoomStatusWaiting indicates a room is waiting for players to join
	RoomStatusWaiting RoomStatus = "waiting"

	// RoomStatusLeaderDrafting indicates the leader is choosing one of the drafted prompts
	RoomStatusLeaderDrafting RoomStatus = "leader_drafting"

	// RoomStatusAwaitingSubmissions indicates lackeys are submitting finisher cards
	RoomStatusAwaitingSubmissions RoomStatus = "awaiting_submissions"

	// RoomStatusAwaitingLeaderChoice indicates the leader is picking the winning finisher
	RoomStatusAwaitingLeaderChoice RoomStatus = "awaiting_leader_choice"

	// RoomStatusRoundResult indicates the round winner is being shown to the members
	RoomStatusRoundResult RoomStatus = "round_result"

	// RoomStatusMatchResult indicates the match is over and the room can be restarted
	RoomStatusMatchResult RoomStatus = "match_result"
)

// Submission records one lackey's finisher card for the current round
type Submission struct {
	// PlayerID is the submitting player
	PlayerID uint32

	// FinisherID is the submitted finisher card id
	FinisherID uint16
}

// Room represents one game session
type Room struct {
	// ID is the opaque numeric identifier of the room
	ID uint32

	// Code is the short join code players type to enter the room
	Code string

	// Status is the current phase of the room
	Status RoomStatus

	// OwnerID is the player who created the room, fixed for its lifetime
	OwnerID uint32

	// LeaderPosition indexes Members to determine the current leader
	LeaderPosition int

	// RoundCounter is the current round, starting at 1
	RoundCounter int

	// RoundTotal is the number of rounds in a match, fixed at creation
	RoundTotal int

	// Members holds the players in join order; join order is turn order
	Members []*Player

	// DrawnPrompts holds the candidate prompt ids drafted for the leader this round
	DrawnPrompts []uint16

	// SelectedPromptID is the prompt the leader picked for this round
	SelectedPromptID *uint16

	// Submissions holds the lackey finisher submissions in submit order
	Submissions []*Submission

	// WinnerPlayerID is the winning submitter of the current round
	WinnerPlayerID *uint32

	// WinnerFinisherID is the winning finisher card of the current round
	WinnerFinisherID *uint16

	// NotReady holds the members that have not yet acknowledged the round result
	NotReady map[uint32]bool

	// PromptBag is the shared draw pool for prompt cards
	PromptBag *CardBag

	// FinisherBag is the shared draw pool for finisher cards
	FinisherBag *CardBag

	// CreatedAt is when the room was created
	CreatedAt time.Time

	// UpdatedAt is when the room was last mutated
	UpdatedAt time.Time
}

// Leader returns the member at the current leader position, or nil if the
// position does not resolve to a member.
func (r *Room) Leader() *Player {
	if r.LeaderPosition < 0 || r.LeaderPosition >= len(r.Members) {
		return nil
	}
	return r.Members[r.LeaderPosition]
}

// Member returns the member with the given id, or nil if the player is not in
// the room.
func (r *Room) Member(playerID uint32) *Player {
	for _, m := range r.Members {
		if m.ID == playerID {
			return m
		}
	}
	return nil
}

// SubmissionFor returns the player's submission for the current round, or nil
// if they have not submitted.
func (r *Room) SubmissionFor(playerID uint32) *Submission {
	for _, sub := range r.Submissions {
		if sub.PlayerID == playerID {
			return sub
		}
	}
	return nil
}

// Clone returns a deep copy of the room
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}

	out := *r

	if r.Members != nil {
		out.Members = make([]*Player, 0, len(r.Members))
		for _, m := range r.Members {
			out.Members = append(out.Members, m.Clone())
		}
	}

	out.DrawnPrompts = append([]uint16(nil), r.DrawnPrompts...)

	if r.Submissions != nil {
		out.Submissions = make([]*Submission, 0, len(r.Submissions))
		for _, sub := range r.Submissions {
			subCopy := *sub
			out.Submissions = append(out.Submissions, &subCopy)
		}
	}

	if r.SelectedPromptID != nil {
		v := *r.SelectedPromptID
		out.SelectedPromptID = &v
	}
	if r.WinnerPlayerID != nil {
		v := *r.WinnerPlayerID
		out.WinnerPlayerID = &v
	}
	if r.WinnerFinisherID != nil {
		v := *r.WinnerFinisherID
		out.WinnerFinisherID = &v
	}

	if r.NotReady != nil {
		out.NotReady = make(map[uint32]bool, len(r.NotReady))
		for id, v := range r.NotReady {
			out.NotReady[id] = v
		}
	}

	out.PromptBag = r.PromptBag.Clone()
	out.FinisherBag = r.FinisherBag.Clone()

	return &out
}
