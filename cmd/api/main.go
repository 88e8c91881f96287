package main

import (
	"os"

	"github.com/unlockedcoding/catalog/internal/pkg/logger"
	"github.com/unlockedcoding/catalog/internal/server"
)

// @title Unlocked Coding Catalog API
// @version 1.0
// @description Course catalog, instructor and blog data API for the Unlocked Coding site

// @contact.name API Support
// @contact.url https://unlockedcoding.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token issued by the Google sign-in callback

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
