package dto

import "transit-mixer-scheduler/internal/domain"

type ScenarioResponse struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Config      ConfigResponse `json:"config"`
}

type ListScenariosResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
}

func NewScenarioResponse(s *domain.Scenario) ScenarioResponse {
	return ScenarioResponse{
		Name:        s.Name,
		Description: s.Description,
		Config:      NewConfigResponse(s.Config),
	}
}
