package main

import (
	"os"

	"todofeed/config"
	"todofeed/di"
	"todofeed/shared/logger"

	"github.com/rs/zerolog"
)

// @title todofeed API
// @version 1.0
// @description Paginated TODO list service.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(os.Stdout)
	logger.UseJSONOutput(cfg, os.Stdout)
	logger.SetLogLevel(cfg, zerolog.InfoLevel)

	http := di.InitializeService()
	http.Serve()
}
