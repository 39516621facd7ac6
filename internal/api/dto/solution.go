package dto

import "scenario-validation-service/internal/domain"

type SolveRequest struct {
	SkipCache bool `json:"skip_cache"`
}

type SolveResponse struct {
	ScenarioID int64            `json:"scenario_id"`
	Solution   *domain.Solution `json:"solution"`
}
