package room

import (
	"context"
	"fmt"
	"time"

	"github.com/lackeysgame/lackeys/internal/models"
)

// PollRoom returns the room snapshot for a polling member. The only state it
// touches is the polling player's last poll time.
func (s *service) PollRoom(ctx context.Context, input *PollRoomInput) (*PollRoomOutput, error) {
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

	now := s.clock.Now()
	member.LastPollTime = now

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	return s.buildSnapshot(room, now)
}

// buildSnapshot projects the room into the per-viewer read model
func (s *service) buildSnapshot(room *models.Room, now time.Time) (*PollRoomOutput, error) {
	leader := room.Leader()
	if leader == nil {
		return nil, fmt.Errorf("%w: leader position %d does not resolve", ErrCorruptRoom, room.LeaderPosition)
	}

	out := &PollRoomOutput{
		Status:       room.Status,
		RoundCounter: room.RoundCounter,
		RoundTotal:   room.RoundTotal,
		OwnerID:      room.OwnerID,
		LeaderID:     leader.ID,
	}

	inRoundResult := room.Status == models.RoomStatusRoundResult

	for _, m := range room.Members {
		snap := &PlayerSnapshot{
			ID:                 m.ID,
			Name:               m.Name,
			Score:              m.Score,
			LastPollAgeSeconds: int(now.Sub(m.LastPollTime).Seconds()),
		}

		if m.ID != leader.ID {
			ready := room.SubmissionFor(m.ID) != nil
			snap.FinisherReady = &ready
		}

		if inRoundResult {
			ready := !room.NotReady[m.ID]
			snap.NextRoundReady = &ready
		}

		out.Players = append(out.Players, snap)
	}

	if room.SelectedPromptID != nil {
		text, err := s.prompts.Text(int(*room.SelectedPromptID))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptRoom, err)
		}
		out.PromptText = &text
	}

	if inRoundResult {
		for _, sub := range room.Submissions {
			submitter := room.Member(sub.PlayerID)
			if submitter == nil {
				return nil, fmt.Errorf("%w: submitter %d is not a member", ErrCorruptRoom, sub.PlayerID)
			}

			text, err := s.finishers.Text(int(sub.FinisherID))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorruptRoom, err)
			}

			isWinner := room.WinnerPlayerID != nil && *room.WinnerPlayerID == sub.PlayerID

			out.Submissions = append(out.Submissions, &SubmissionSnapshot{
				PlayerName:   submitter.Name,
				FinisherText: text,
				IsWinner:     isWinner,
			})
		}
	}

	return out, nil
}
