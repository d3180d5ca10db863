package repositories

import (
	"database/sql"
	"transit-mixer-scheduler/internal/domain"
)

const scenarioColumns = `
		name,
		description,
		start_time,
		total_quantity,
		load_duration,
		travel_duration,
		unload_duration,
		buffer_duration,
		quantity_per_trip,
		vehicle_count`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(r rowScanner) (*domain.Scenario, error) {
	var (
		s    domain.Scenario
		desc sql.NullString
	)
	err := r.Scan(
		&s.Name,
		&desc,
		&s.Config.StartTime,
		&s.Config.TotalQuantity,
		&s.Config.LoadDuration,
		&s.Config.TravelDuration,
		&s.Config.UnloadDuration,
		&s.Config.BufferDuration,
		&s.Config.QuantityPerTrip,
		&s.Config.VehicleCount,
	)
	if err != nil {
		return nil, err
	}
	s.Description = desc.String
	return &s, nil
}

func scenarioArgs(s ScenarioSeed) []any {
	return []any{
		s.Name,
		s.Description,
		s.StartTime,
		s.TotalQuantity,
		s.LoadDuration,
		s.TravelDuration,
		s.UnloadDuration,
		s.BufferDuration,
		s.QuantityPerTrip,
		s.VehicleCount,
	}
}
