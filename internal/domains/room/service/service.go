package service

import (
	"context"
	"paradise/config"
	"paradise/infras/otel"
	"paradise/internal/domains/room/model"
	"paradise/internal/domains/room/model/dto"
	"paradise/shared/constant"
)

// Room exposes the fixed catalog of room types offered on the booking form.
type Room interface {
	List(ctx context.Context) []model.Room
	GetAll(ctx context.Context) dto.GetRoomsResponse
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) []model.Room {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()

	rooms := make([]model.Room, 0, len(s.cfg.App.RoomTypes))
	for _, name := range s.cfg.App.RoomTypes {
		rooms = append(rooms, model.Room{Name: model.RoomName(name)})
	}

	return rooms
}

func (s *serviceImpl) GetAll(ctx context.Context) dto.GetRoomsResponse {
	var resp dto.GetRoomsResponse

	resp.FromModels(s.List(ctx))

	return resp
}
