package room

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/lackeysgame/lackeys/internal/cards"
	"github.com/lackeysgame/lackeys/internal/common/clock"
	"github.com/lackeysgame/lackeys/internal/common/identgen"
	"github.com/lackeysgame/lackeys/internal/corpus"
	"github.com/lackeysgame/lackeys/internal/models"
	roomRepo "github.com/lackeysgame/lackeys/internal/repositories/room"
)

const (
	maxNameLength = 16
	maxCodeLength = 6

	// Attempts before giving up on finding an unused random id or code
	maxAllocAttempts = 16
)

// service implements the Service interface
type service struct {
	config    *Config
	roomRepo  roomRepo.Repository
	prompts   corpus.Provider
	finishers corpus.Provider
	shuffler  cards.Shuffler
	clock     clock.Clock
	idGen     identgen.Generator

	// mu guards roomLocks; each room lock serializes mutations of one room
	mu        sync.Mutex
	roomLocks map[uint32]*sync.Mutex
}

// New creates a new room service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}
	if cfg.Prompts == nil || cfg.Prompts.Count() == 0 {
		return nil, ErrNilPromptCorpus
	}
	if cfg.Finishers == nil || cfg.Finishers.Count() == 0 {
		return nil, ErrNilFinisherCorpus
	}
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.IDGen == nil {
		return nil, ErrNilIDGenerator
	}

	// Set default values if not provided
	if cfg.RoundTotal <= 0 {
		cfg.RoundTotal = 4
	}
	if cfg.HandSize <= 0 {
		cfg.HandSize = 8
	}
	if cfg.PromptChoices <= 0 {
		cfg.PromptChoices = 3
	}
	if cfg.MinPlayers <= 0 {
		cfg.MinPlayers = 3
	}

	return &service{
		config:    cfg,
		roomRepo:  cfg.RoomRepo,
		prompts:   cfg.Prompts,
		finishers: cfg.Finishers,
		shuffler:  cfg.Shuffler,
		clock:     cfg.Clock,
		idGen:     cfg.IDGen,
		roomLocks: make(map[uint32]*sync.Mutex),
	}, nil
}

// lockRoom returns the mutex serializing mutations of one room. Locks are
// never released from the map; rooms live for the process lifetime.
func (s *service) lockRoom(roomID uint32) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.roomLocks[roomID]
	if !ok {
		l = &sync.Mutex{}
		s.roomLocks[roomID] = l
	}

	return l
}

// CreateRoom creates a new room owned by a freshly created player
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name, err := normalizeName(input.OwnerName)
	if err != nil {
		return nil, err
	}

	roomID, err := s.allocRoomID(ctx)
	if err != nil {
		return nil, err
	}

	code, err := s.allocJoinCode(ctx)
	if err != nil {
		return nil, err
	}

	promptBag, err := cards.NewBag(s.prompts.Count(), s.shuffler)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRoom, err)
	}

	finisherBag, err := cards.NewBag(s.finishers.Count(), s.shuffler)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRoom, err)
	}

	now := s.clock.Now()
	owner := &models.Player{
		ID:           s.idGen.NewID(),
		Name:         name,
		LastPollTime: now,
	}

	room := &models.Room{
		ID:           roomID,
		Code:         code,
		Status:       models.RoomStatusWaiting,
		OwnerID:      owner.ID,
		RoundCounter: 1,
		RoundTotal:   s.config.RoundTotal,
		Members:      []*models.Player{owner},
		NotReady:     map[uint32]bool{},
		PromptBag:    promptBag,
		FinisherBag:  finisherBag,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
		Room: room,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}

	return &CreateRoomOutput{
		RoomID:   roomID,
		JoinCode: code,
		PlayerID: owner.ID,
	}, nil
}

// JoinRoom adds a new player to the room matching a join code
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name, err := normalizeName(input.PlayerName)
	if err != nil {
		return nil, err
	}

	code, err := normalizeCode(input.JoinCode)
	if err != nil {
		return nil, err
	}

	found, err := s.roomRepo.GetRoomByCode(ctx, &roomRepo.GetRoomByCodeInput{
		Code: code,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to resolve join code: %w", err)
	}

	lock := s.lockRoom(found.ID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the room lock so concurrent joins cannot clobber each
	// other's membership append.
	room, err := s.getRoom(ctx, found.ID)
	if err != nil {
		return nil, err
	}

	playerID, err := s.allocPlayerID(room)
	if err != nil {
		return nil, err
	}

	player := &models.Player{
		ID:           playerID,
		Name:         name,
		LastPollTime: s.clock.Now(),
	}
	room.Members = append(room.Members, player)

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	return &JoinRoomOutput{
		RoomID:   room.ID,
		PlayerID: playerID,
	}, nil
}

// getRoom retrieves a room, translating repository errors
func (s *service) getRoom(ctx context.Context, roomID uint32) (*models.Room, error) {
	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: roomID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return room, nil
}

// saveRoom stamps the room and persists it
func (s *service) saveRoom(ctx context.Context, room *models.Room) error {
	room.UpdatedAt = s.clock.Now()

	err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
		Room: room,
	})
	if err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// resolveMember loads a room and checks the caller's membership
func (s *service) resolveMember(ctx context.Context, roomID, playerID uint32) (*models.Room, *models.Player, error) {
	if roomID == 0 || playerID == 0 {
		return nil, nil, ErrInvalidID
	}

	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}

	member := room.Member(playerID)
	if member == nil {
		return nil, nil, ErrPlayerNotInRoom
	}

	return room, member, nil
}

// allocRoomID generates room ids until one is unused
func (s *service) allocRoomID(ctx context.Context) (uint32, error) {
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		id := s.idGen.NewID()

		_, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
			RoomID: id,
		})
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return id, nil
		}
		if err != nil {
			return 0, fmt.Errorf("failed to check room id: %w", err)
		}
	}

	return 0, ErrIDExhausted
}

// allocJoinCode generates join codes until one is unused
func (s *service) allocJoinCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		code := s.idGen.NewJoinCode()

		_, err := s.roomRepo.GetRoomByCode(ctx, &roomRepo.GetRoomByCodeInput{
			Code: code,
		})
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check join code: %w", err)
		}
	}

	return "", ErrIDExhausted
}

// allocPlayerID generates player ids until one is unused within the room
func (s *service) allocPlayerID(room *models.Room) (uint32, error) {
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		id := s.idGen.NewID()
		if room.Member(id) == nil {
			return id, nil
		}
	}

	return 0, ErrIDExhausted
}

// normalizeName trims a display name and checks its length
func normalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxNameLength {
		return "", ErrInvalidName
	}

	return trimmed, nil
}

// normalizeCode trims and upper-cases a join code and checks its length
func normalizeCode(code string) (string, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(code))
	if trimmed == "" || len(trimmed) > maxCodeLength {
		return "", ErrInvalidCode
	}

	return trimmed, nil
}
