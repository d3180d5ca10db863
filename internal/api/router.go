package api

import (
	"net/http"
	"transit-mixer-scheduler/internal/api/handlers"
	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ScenarioRepository, defaults domain.ScheduleConfig) http.Handler {
	mux := http.NewServeMux()

	scenarioHandler := &handlers.ScenarioHandler{Repo: repo}
	scheduleHandler := &handlers.ScheduleHandler{
		Repo:     repo,
		Defaults: defaults,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/scenarios", scenarioHandler.List)
	mux.HandleFunc("/schedules", scheduleHandler.Schedule)
	mux.HandleFunc("/schedules/export", scheduleHandler.Export)

	return requestIDMiddleware(loggingMiddleware(mux))
}
