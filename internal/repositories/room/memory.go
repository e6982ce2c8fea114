package room

import (
	"context"
	"errors"
	"sync"

	"github.com/lackeysgame/lackeys/internal/models"
)

// memoryRepository implements the Repository interface with process-local
// maps. All room state is volatile and lost on restart.
type memoryRepository struct {
	mu    sync.RWMutex
	rooms map[uint32]*models.Room
	codes map[string]uint32
}

// NewMemory creates a new in-memory room repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		rooms: make(map[uint32]*models.Room),
		codes: make(map[string]uint32),
	}
}

// SaveRoom persists a room in memory
func (r *memoryRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	// Stored rooms are cloned so callers cannot mutate them in place.
	stored := input.Room.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms[stored.ID] = stored
	if stored.Code != "" {
		r.codes[stored.Code] = stored.ID
	}

	return nil
}

// GetRoom retrieves a room by ID
func (r *memoryRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == 0 {
		return nil, errors.New("input and room ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[input.RoomID]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return room.Clone(), nil
}

// GetRoomByCode retrieves a room by join code
func (r *memoryRepository) GetRoomByCode(ctx context.Context, input *GetRoomByCodeInput) (*models.Room, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and code cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.codes[input.Code]
	if !ok {
		return nil, ErrRoomNotFound
	}

	room, ok := r.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return room.Clone(), nil
}
