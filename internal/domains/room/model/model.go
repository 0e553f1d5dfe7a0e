package model

import (
	"errors"
	"paradise/config"
	"slices"
)

const (
	EntityName = "room"
)

var ErrUnknownRoom = errors.New("unknown room type")

// RoomName is a room type as submitted by a guest.
type RoomName string

// Validate accepts only the room types configured in APP_ROOM_TYPES.
func (r RoomName) Validate(cfg *config.Config) error {
	if r == "" || !slices.Contains(cfg.App.RoomTypes, string(r)) {
		return ErrUnknownRoom
	}

	return nil
}

type Room struct {
	Name RoomName
}
