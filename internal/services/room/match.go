package room

import (
	"context"
	"fmt"

	"github.com/lackeysgame/lackeys/internal/cards"
	"github.com/lackeysgame/lackeys/internal/corpus"
	"github.com/lackeysgame/lackeys/internal/models"
)

// Advance starts the match, acknowledges a round result, or restarts a
// finished match, depending on the room phase.
func (s *service) Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	lock := s.lockRoom(input.RoomID)
	lock.Lock()
	defer lock.Unlock()

	room, _, err := s.resolveMember(ctx, input.RoomID, input.PlayerID)
	if err != nil {
		return nil, err
	}

	switch room.Status {
	case models.RoomStatusWaiting:
		if input.PlayerID != room.OwnerID {
			return nil, fmt.Errorf("%w: only the owner can start the match", ErrNotOwner)
		}
		if len(room.Members) < s.config.MinPlayers {
			return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughPlayers, len(room.Members), s.config.MinPlayers)
		}

		room.LeaderPosition = 0
		room.Status = models.RoomStatusLeaderDrafting

	case models.RoomStatusRoundResult:
		// Acknowledging twice is harmless; the round moves on once the
		// last member has signaled.
		delete(room.NotReady, input.PlayerID)

		if len(room.NotReady) == 0 {
			resetRoundArtifacts(room)

			if room.RoundCounter < room.RoundTotal {
				room.RoundCounter++
				room.LeaderPosition = (room.LeaderPosition + 1) % len(room.Members)
				room.Status = models.RoomStatusLeaderDrafting
			} else {
				room.Status = models.RoomStatusMatchResult
			}
		}

	case models.RoomStatusMatchResult:
		if input.PlayerID != room.OwnerID {
			return nil, fmt.Errorf("%w: only the owner can start a new match", ErrNotOwner)
		}

		for _, m := range room.Members {
			m.Score = 0
		}
		room.RoundCounter = 1
		room.LeaderPosition = (room.LeaderPosition + 1) % len(room.Members)
		resetRoundArtifacts(room)
		room.Status = models.RoomStatusLeaderDrafting

	default:
		return nil, fmt.Errorf("%w: expected %s, %s or %s, room is %s",
			ErrWrongPhase,
			models.RoomStatusWaiting, models.RoomStatusRoundResult, models.RoomStatusMatchResult,
			room.Status)
	}

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	return &AdvanceOutput{
		Status: room.Status,
	}, nil
}

// GetOptions returns the cards the player may currently pick from. Drafting
// tops up the leader's candidate prompts and a lackey's hand as a side
// effect, so a player always sees a full set of choices.
func (s *service) GetOptions(ctx context.Context, input *GetOptionsInput) (*GetOptionsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	lock := s.lockRoom(input.RoomID)
	lock.Lock()
	defer lock.Unlock()

	room, member, err := s.resolveMember(ctx, input.RoomID, input.PlayerID)
	if err != nil {
		return nil, err
	}

	leader := room.Leader()
	if leader == nil {
		return nil, fmt.Errorf("%w: leader position %d does not resolve", ErrCorruptRoom, room.LeaderPosition)
	}
	isLeader := member.ID == leader.ID

	var options []*Option

	switch {
	case isLeader && room.Status == models.RoomStatusLeaderDrafting:
		drawn, err := cards.EnsureFilled(room.DrawnPrompts, s.config.PromptChoices, room.PromptBag, s.shuffler)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptRoom, err)
		}
		room.DrawnPrompts = drawn

		if err := s.saveRoom(ctx, room); err != nil {
			return nil, err
		}

		options, err = buildOptions(room.DrawnPrompts, s.prompts)
		if err != nil {
			return nil, err
		}

	case isLeader && room.Status == models.RoomStatusAwaitingLeaderChoice:
		ids := make([]uint16, 0, len(room.Submissions))
		for _, sub := range room.Submissions {
			ids = append(ids, sub.FinisherID)
		}

		options, err = buildOptions(ids, s.finishers)
		if err != nil {
			return nil, err
		}

	case !isLeader && room.Status == models.RoomStatusAwaitingSubmissions:
		hand, err := cards.EnsureFilled(member.Hand, s.config.HandSize, room.FinisherBag, s.shuffler)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptRoom, err)
		}
		member.Hand = hand

		if err := s.saveRoom(ctx, room); err != nil {
			return nil, err
		}

		options, err = buildOptions(member.Hand, s.finishers)
		if err != nil {
			return nil, err
		}

	default:
		return nil, wrongPhaseForRole(isLeader, room.Status)
	}

	return &GetOptionsOutput{
		Options: options,
	}, nil
}

// SubmitPick applies the player's card pick to the room
func (s *service) SubmitPick(ctx context.Context, input *SubmitPickInput) (*SubmitPickOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	lock := s.lockRoom(input.RoomID)
	lock.Lock()
	defer lock.Unlock()

	room, member, err := s.resolveMember(ctx, input.RoomID, input.PlayerID)
	if err != nil {
		return nil, err
	}

	leader := room.Leader()
	if leader == nil {
		return nil, fmt.Errorf("%w: leader position %d does not resolve", ErrCorruptRoom, room.LeaderPosition)
	}
	isLeader := member.ID == leader.ID

	switch {
	case isLeader && room.Status == models.RoomStatusLeaderDrafting:
		if !containsID(room.DrawnPrompts, input.OptionID) {
			return nil, fmt.Errorf("%w: prompt %d was not drafted", ErrUnknownOption, input.OptionID)
		}

		picked := input.OptionID
		room.SelectedPromptID = &picked
		room.Submissions = nil
		room.Status = models.RoomStatusAwaitingSubmissions

	case !isLeader && room.Status == models.RoomStatusAwaitingSubmissions:
		if room.SubmissionFor(member.ID) != nil {
			return nil, ErrAlreadySubmitted
		}

		idx := indexOfID(member.Hand, input.OptionID)
		if idx < 0 {
			return nil, fmt.Errorf("%w: finisher %d is not in hand", ErrUnknownOption, input.OptionID)
		}

		member.Hand = append(member.Hand[:idx], member.Hand[idx+1:]...)
		room.Submissions = append(room.Submissions, &models.Submission{
			PlayerID:   member.ID,
			FinisherID: input.OptionID,
		})

		if hasSubmissionQuorum(room) {
			room.Status = models.RoomStatusAwaitingLeaderChoice
		}

	case isLeader && room.Status == models.RoomStatusAwaitingLeaderChoice:
		// Two lackeys can hold the same card once the bag has cycled; the
		// earliest submission of the card wins.
		var winning *models.Submission
		for _, sub := range room.Submissions {
			if sub.FinisherID == input.OptionID {
				winning = sub
				break
			}
		}
		if winning == nil {
			return nil, fmt.Errorf("%w: finisher %d was not submitted", ErrUnknownOption, input.OptionID)
		}

		winner := room.Member(winning.PlayerID)
		if winner == nil {
			return nil, fmt.Errorf("%w: submitter %d is not a member", ErrCorruptRoom, winning.PlayerID)
		}
		winner.Score++

		winnerID := winning.PlayerID
		finisherID := winning.FinisherID
		room.WinnerPlayerID = &winnerID
		room.WinnerFinisherID = &finisherID

		room.NotReady = make(map[uint32]bool, len(room.Members))
		for _, m := range room.Members {
			room.NotReady[m.ID] = true
		}

		room.Status = models.RoomStatusRoundResult

	default:
		return nil, wrongPhaseForRole(isLeader, room.Status)
	}

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	return &SubmitPickOutput{
		Status: room.Status,
	}, nil
}

// hasSubmissionQuorum reports whether every member other than the leader has
// a recorded submission for the current round.
func hasSubmissionQuorum(room *models.Room) bool {
	leader := room.Leader()

	for _, m := range room.Members {
		if leader != nil && m.ID == leader.ID {
			continue
		}
		if room.SubmissionFor(m.ID) == nil {
			return false
		}
	}

	return true
}

// resetRoundArtifacts clears the per-round state when a round is left behind
func resetRoundArtifacts(room *models.Room) {
	room.DrawnPrompts = nil
	room.SelectedPromptID = nil
	room.Submissions = nil
	room.WinnerPlayerID = nil
	room.WinnerFinisherID = nil
	room.NotReady = map[uint32]bool{}
}

// buildOptions resolves card ids to their texts
func buildOptions(ids []uint16, provider corpus.Provider) ([]*Option, error) {
	options := make([]*Option, 0, len(ids))
	for _, id := range ids {
		text, err := provider.Text(int(id))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptRoom, err)
		}
		options = append(options, &Option{
			ID:   id,
			Text: text,
		})
	}

	return options, nil
}

func wrongPhaseForRole(isLeader bool, status models.RoomStatus) error {
	if isLeader {
		return fmt.Errorf("%w: no leader action while room is %s", ErrWrongPhase, status)
	}
	return fmt.Errorf("%w: no lackey action while room is %s", ErrWrongPhase, status)
}

func containsID(ids []uint16, id uint16) bool {
	return indexOfID(ids, id) >= 0
}

func indexOfID(ids []uint16, id uint16) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
