package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/platform/obs"
)

// SQLite-backed implementation of the ScenarioRepository port.
type SqliteScenarioRepository struct{ DB *sql.DB }

func NewSqliteScenarioRepository(db *sql.DB) *SqliteScenarioRepository {
	return &SqliteScenarioRepository{DB: db}
}

// Return all scenarios stored in the database.
func (s *SqliteScenarioRepository) ListScenarios(ctx context.Context) (_ []*domain.Scenario, err error) {
	defer obs.Time(ctx, "scenarios.sqlite.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite scenario repository: DB is nil")
	}

	query := `SELECT` + scenarioColumns + `
	FROM scenarios
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: query scenarios table: %w", err)
	}
	defer rows.Close()

	scenarios := make([]*domain.Scenario, 0, 16)
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, fmt.Errorf("list scenarios: scan row: %w", err)
		}
		scenarios = append(scenarios, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scenarios: row iteration: %w", err)
	}

	return scenarios, nil
}

// Return the scenario with the given name.
func (s *SqliteScenarioRepository) GetScenario(ctx context.Context, name string) (_ *domain.Scenario, err error) {
	defer obs.Time(ctx, "scenarios.sqlite.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite scenario repository: DB is nil")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("get scenario: name must not be empty")
	}

	query := `SELECT` + scenarioColumns + `
	FROM scenarios
	WHERE name = ?;
	`
	sc, err := scanScenario(s.DB.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get scenario %q: %w", name, domain.ErrScenarioNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get scenario %q: scan row: %w", name, err)
	}

	return sc, nil
}
