package di

import (
	"paradise/infras/otel"
	"paradise/transport/http"
)

// App is everything main needs to run and stop the service.
type App struct {
	HTTP *http.HTTP
	Otel otel.Otel
}
