package main

import (
	"paroisse/config"
	"paroisse/di"
	"paroisse/helper"
	"paroisse/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Paroisse API
// @version 1.0
// @description Parish schedules and mass intention booking.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	http, cleanup := di.InitializeService()
	defer cleanup()

	http.Serve()
}
