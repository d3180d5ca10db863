package repositories

import (
	"database/sql"
	"fmt"
)

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	createScenariosQuery := `
	CREATE TABLE IF NOT EXISTS scenarios (
		name TEXT PRIMARY KEY,
		description TEXT,
		start_time INTEGER NOT NULL CHECK (start_time >= 0),
		total_quantity INTEGER NOT NULL CHECK (total_quantity > 0),
		load_duration INTEGER NOT NULL CHECK (load_duration >= 0),
		travel_duration INTEGER NOT NULL CHECK (travel_duration >= 0),
		unload_duration INTEGER NOT NULL CHECK (unload_duration >= 0),
		buffer_duration INTEGER NOT NULL CHECK (buffer_duration >= 0),
		quantity_per_trip INTEGER NOT NULL CHECK (quantity_per_trip > 0),
		vehicle_count INTEGER NOT NULL CHECK (vehicle_count > 0)
	);
	`

	return execSchema(db, "init postgres schema", []string{createScenariosQuery})
}

// Populate the Postgres database with scenarios from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := LoadSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed scenarios: %w", err)
	}

	query := `
	INSERT INTO scenarios (` + scenarioColumns + `
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (name) DO UPDATE
	SET description = EXCLUDED.description,
		start_time = EXCLUDED.start_time,
		total_quantity = EXCLUDED.total_quantity,
		load_duration = EXCLUDED.load_duration,
		travel_duration = EXCLUDED.travel_duration,
		unload_duration = EXCLUDED.unload_duration,
		buffer_duration = EXCLUDED.buffer_duration,
		quantity_per_trip = EXCLUDED.quantity_per_trip,
		vehicle_count = EXCLUDED.vehicle_count;
	`
	return insertSeeds(db, query, rows)
}
