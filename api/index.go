package handler

import (
	"net/http"
	"os"
	"sync"

	"todofeed/config"
	"todofeed/di"
	"todofeed/shared/logger"

	"github.com/rs/zerolog"
)

var (
	app     http.Handler
	appOnce sync.Once
)

// Handler is the serverless entry point. The service graph is built on the first request and reused.
func Handler(w http.ResponseWriter, r *http.Request) {
	appOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger(os.Stdout)
		logger.UseJSONOutput(cfg, os.Stdout)
		logger.SetLogLevel(cfg, zerolog.InfoLevel)

		app = di.InitializeService().Handler()
	})

	r.RequestURI = r.URL.String()

	app.ServeHTTP(w, r)
}
