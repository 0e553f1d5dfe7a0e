package handler

import (
	"net/http"
	"paradise/config"
	"paradise/di"
	"paradise/shared/logger"
	"sync"
)

var (
	handlerOnce sync.Once
	app         http.Handler
)

// Handler is the serverless entrypoint. The application is built on the first
// request and reused by later ones on the same instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	handlerOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app = di.InitializeApp().HTTP.Handler()
	})

	app.ServeHTTP(w, r)
}
