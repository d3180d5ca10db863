package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"transit-mixer-scheduler/internal/api/dto"
	"transit-mixer-scheduler/internal/platform/obs"
	"transit-mixer-scheduler/internal/ports"
)

// ScenarioHandler exposes read-only scenario preset endpoints.
type ScenarioHandler struct {
	Repo ports.ScenarioRepository
}

func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	scenarios, err := h.Repo.ListScenarios(r.Context())
	if err != nil {
		log.Error().Str("req_id", obs.RequestID(r.Context())).Err(err).Msg("list scenarios failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListScenariosResponse{
		Scenarios: make([]dto.ScenarioResponse, 0, len(scenarios)),
	}
	for _, s := range scenarios {
		res.Scenarios = append(res.Scenarios, dto.NewScenarioResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}
