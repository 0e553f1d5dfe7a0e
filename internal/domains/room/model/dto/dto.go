package dto

import "paradise/internal/domains/room/model"

type RoomResponse struct {
	Name string `json:"name"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.Name = string(model.Name)
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Total = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
