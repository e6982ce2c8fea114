package room

import (
	"context"

	"github.com/lackeysgame/lackeys/internal/models"
)

// Repository defines the interface for room persistence
type Repository interface {
	// SaveRoom persists a room
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// GetRoomByCode retrieves a room by join code
	GetRoomByCode(ctx context.Context, input *GetRoomByCodeInput) (*models.Room, error)
}
