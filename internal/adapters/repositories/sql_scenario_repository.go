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

// SQLScenarioRepository reads scenarios from Postgres through the pgx driver.
type SQLScenarioRepository struct {
	DB *sql.DB
}

func NewSQLScenarioRepository(db *sql.DB) *SQLScenarioRepository {
	return &SQLScenarioRepository{DB: db}
}

func (s *SQLScenarioRepository) ListScenarios(ctx context.Context) (_ []*domain.Scenario, err error) {
	defer obs.Time(ctx, "scenarios.sql.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql scenario repository: db is nil")
	}

	q := `SELECT` + scenarioColumns + `
	FROM scenarios
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: query scenarios table: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Scenario, 0, 16)
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, fmt.Errorf("list scenarios: scan row: %w", err)
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scenarios: row iteration: %w", err)
	}

	return out, nil
}

func (s *SQLScenarioRepository) GetScenario(ctx context.Context, name string) (_ *domain.Scenario, err error) {
	defer obs.Time(ctx, "scenarios.sql.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("sql scenario repository: db is nil")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("get scenario: name must not be empty")
	}

	q := `SELECT` + scenarioColumns + `
	FROM scenarios
	WHERE name = $1;
	`
	sc, err := scanScenario(s.DB.QueryRowContext(ctx, q, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get scenario %q: %w", name, domain.ErrScenarioNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get scenario %q: scan row: %w", name, err)
	}

	return sc, nil
}
