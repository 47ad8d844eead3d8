package main

import (
	"os"

	"github.com/rs/zerolog"

	"shopease/internal/config"
	"shopease/internal/database"
)

// Applies pending schema migrations and exits. The server also migrates on
// startup; this tool exists for running migrations out of band.
func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}

	logger.Info().Msg("migrations applied")
}
