package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"
	"transit-mixer-scheduler/internal/adapters/repositories"
	"transit-mixer-scheduler/internal/api"
	"transit-mixer-scheduler/internal/config"
	"transit-mixer-scheduler/internal/platform/db"
	"transit-mixer-scheduler/internal/platform/logging"
	"transit-mixer-scheduler/internal/ports"

	"github.com/rs/zerolog/log"
)

// main is the application composition root.
// It wires the scenario store behind its port and starts the HTTP server.
func main() {
	envLoaded := config.LoadEnv()
	logging.Setup(config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "console"))
	if !envLoaded {
		log.Info().Msg("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	defaultsPath := config.Get("DEFAULTS_PATH", "config/defaults.toml")

	defaults, err := config.LoadDefaults(defaultsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load defaults")
	}
	defaultConfig, err := defaults.ScheduleConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load defaults")
	}

	conn, repo, err := openScenarioStore()
	if err != nil {
		log.Fatal().Err(err).Msg("open scenario store")
	}
	defer conn.Close()

	router := api.NewRouter(repo, defaultConfig)

	log.Info().Str("addr", ":"+port).Msg("Server listening")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// openScenarioStore uses Postgres when DATABASE_URL is set (schema managed
// by dbtool) and otherwise a local SQLite file that is initialised and
// seeded on startup.
func openScenarioStore() (*sql.DB, ports.ScenarioRepository, error) {
	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("store", "postgres").Msg("scenario store ready")
		return conn, repositories.NewSQLScenarioRepository(conn), nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/scenarios.json")

	conn, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, err
	}

	// Initialize schema and seed demo scenarios on startup for local runs.
	if err := initAndSeed(conn, seedPath); err != nil {
		conn.Close()
		return nil, nil, err
	}

	log.Info().Str("store", "sqlite").Str("path", dbPath).Msg("scenario store ready")
	return conn, repositories.NewSqliteScenarioRepository(conn), nil
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
