package main

import (
	"database/sql"
	"transit-mixer-scheduler/internal/adapters/repositories"
	"transit-mixer-scheduler/internal/config"
	"transit-mixer-scheduler/internal/platform/db"
	"transit-mixer-scheduler/internal/platform/logging"

	"github.com/rs/zerolog/log"
)

func main() {
	envLoaded := config.LoadEnv()
	logging.Setup(config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "console"))
	if !envLoaded {
		log.Info().Msg("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/scenarios.json")
	initAndSeed(conn, seedPath)
}

func initAndSeed(conn *sql.DB, seedPath string) {
	log.Info().Msg("Initializing database schema...")
	if err := repositories.InitPostgresSchema(conn); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}
	log.Info().Msg("Schema ready.")

	log.Info().Str("seed", seedPath).Msg("Seeding database...")
	if err := repositories.SeedPostgresFromJSON(conn, seedPath); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("Seeding complete.")
}
