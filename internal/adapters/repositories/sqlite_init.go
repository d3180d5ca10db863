package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"transit-mixer-scheduler/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
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

	return execSchema(db, "init schema", []string{createScenariosQuery})
}

func execSchema(db *sql.DB, op string, statements []string) error {
	if db == nil {
		return fmt.Errorf("%s: DB is nil", op)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("%s: exec statement #%d: %w", op, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit tx: %w", op, err)
	}

	return nil
}

type ScenarioSeed struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	StartTime       int    `json:"start_time"`
	TotalQuantity   int    `json:"total_quantity"`
	LoadDuration    int    `json:"load_duration"`
	TravelDuration  int    `json:"travel_duration"`
	UnloadDuration  int    `json:"unload_duration"`
	BufferDuration  int    `json:"buffer_duration"`
	QuantityPerTrip int    `json:"quantity_per_trip"`
	VehicleCount    int    `json:"vehicle_count"`
}

func (s ScenarioSeed) config() domain.ScheduleConfig {
	return domain.ScheduleConfig{
		StartTime:       s.StartTime,
		TotalQuantity:   s.TotalQuantity,
		LoadDuration:    s.LoadDuration,
		TravelDuration:  s.TravelDuration,
		UnloadDuration:  s.UnloadDuration,
		BufferDuration:  s.BufferDuration,
		QuantityPerTrip: s.QuantityPerTrip,
		VehicleCount:    s.VehicleCount,
	}
}

// Read and validate scenario seeds from a JSON file.
func LoadSeeds(jsonPath string) ([]ScenarioSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seeds: read %q: %w", jsonPath, err)
	}

	var data []ScenarioSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load seeds: parse json: %w", err)
	}

	rows := make([]ScenarioSeed, 0, len(data))
	seen := make(map[string]struct{}, len(data))
	for i, item := range data {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return nil, fmt.Errorf("load seeds: item at index %d: name cannot be empty", i+1)
		}
		if _, ok := seen[item.Name]; ok {
			return nil, fmt.Errorf("load seeds: item at index %d: duplicate name %q", i+1, item.Name)
		}
		seen[item.Name] = struct{}{}

		if err := item.config().Validate(); err != nil {
			return nil, fmt.Errorf("load seeds: scenario %q: %w", item.Name, err)
		}
		rows = append(rows, item)
	}

	return rows, nil
}

// Populate the SQLite database with scenarios from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := LoadSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed scenarios: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO scenarios (` + scenarioColumns + `
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	return insertSeeds(db, query, rows)
}

func insertSeeds(db *sql.DB, query string, rows []ScenarioSeed) error {
	if db == nil {
		return errors.New("seed scenarios: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed scenarios: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed scenarios: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.Exec(scenarioArgs(s)...); err != nil {
			return fmt.Errorf("seed scenarios: insert name=%q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed scenarios: commit tx: %w", err)
	}

	return nil
}
