package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"shopease/internal/config"
	"shopease/internal/database"
	"shopease/internal/utils"
)

// Creates an admin account, or promotes the account to admin if the email
// is already registered.
func main() {
	name := flag.String("name", "Admin", "admin display name")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if *email == "" || *password == "" {
		logger.Fatal().Msg("both -email and -password are required")
	}
	if len(*password) < 8 {
		logger.Fatal().Msg("password must be at least 8 characters")
	}

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

	hash, err := utils.HashPassword(*password)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to hash password")
	}

	var id int
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, 'admin')
		ON CONFLICT (email) DO UPDATE SET role = 'admin', updated_at = NOW()
		RETURNING id`,
		*name, *email, hash,
	).Scan(&id)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create admin")
	}

	logger.Info().Int("id", id).Str("email", *email).Msg("admin account ready")
}
