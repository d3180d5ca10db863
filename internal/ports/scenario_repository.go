package ports

import (
	"context"
	"transit-mixer-scheduler/internal/domain"
)

// Port: a boundary for retrieving stored scenario presets.
type ScenarioRepository interface {
	// Return all scenarios ordered by name.
	ListScenarios(ctx context.Context) ([]*domain.Scenario, error)
	// Return a single scenario; domain.ErrScenarioNotFound when the name is unknown.
	GetScenario(ctx context.Context, name string) (*domain.Scenario, error)
}
