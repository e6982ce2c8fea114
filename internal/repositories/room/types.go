package room

import "github.com/lackeysgame/lackeys/internal/models"

type SaveRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	RoomID uint32
}

type GetRoomByCodeInput struct {
	Code string
}
