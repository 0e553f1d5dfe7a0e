package room

import (
	"net/http"
	"paradise/infras/otel"
	"paradise/internal/domains/room/service"
	"paradise/shared/constant"
	"paradise/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/room-types", handler.GetRoomTypes)
}

// GetRoomTypes lists the room types a booking may choose from.
// @Summary List room types
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Router /v1/room-types [get]
func (handler *Handler) GetRoomTypes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.GetAll(ctx))
}
