package dto

import (
	"time"

	"scenario-validation-service/internal/domain"
)

type CreateScenarioRequest struct {
	Name     string           `json:"name"`
	Scenario *domain.Scenario `json:"scenario"`
}

type CreateScenarioResponse struct {
	ScenarioID int64 `json:"scenario_id"`
}

type ScenarioSummaryResponse struct {
	ScenarioID int64     `json:"scenario_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ListScenariosResponse struct {
	Scenarios []ScenarioSummaryResponse `json:"scenarios"`
}

type ScenarioResponse struct {
	ScenarioID int64            `json:"scenario_id"`
	Scenario   *domain.Scenario `json:"scenario"`
}
