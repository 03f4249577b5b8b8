package handler

import (
	"net/http"
	"sync"

	"hostdeck/config"
	"hostdeck/di"
	"hostdeck/shared/logger"

	"github.com/rs/zerolog/log"
)

var (
	app     *di.App
	initErr error
	once    sync.Once
)

// Handler is the serverless entrypoint. The listing change consumer does not run here.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app, initErr = di.InitializeApp()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	r.RequestURI = r.URL.String()

	app.HTTP.ServeHTTP(w, r)
}
