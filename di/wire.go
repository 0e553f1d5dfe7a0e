//go:build wireinject
// +build wireinject

package di

import (
	"paradise/config"
	"paradise/infras/otel"
	bookingHandler "paradise/internal/handlers/booking"
	roomHandler "paradise/internal/handlers/room"
	"paradise/shared/kv"
	"paradise/transport/http"
	"paradise/transport/http/middleware"
	"paradise/transport/http/router"

	bookingRepository "paradise/internal/domains/booking/repository"
	bookingService "paradise/internal/domains/booking/service"
	roomService "paradise/internal/domains/room/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	kv.New,
)

var roomDomain = wire.NewSet(
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
