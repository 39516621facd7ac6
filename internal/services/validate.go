package services

import (
	"context"
	"fmt"

	"scenario-validation-service/internal/domain"
	"scenario-validation-service/internal/ports"
	"scenario-validation-service/internal/validation"
)

// ValidateScenario loads a stored scenario and runs the request-level
// advisory checks against it.
func ValidateScenario(
	ctx context.Context,
	scenarioID int64,
	ignoredShipmentIDs, ignoredVehicleIDs []int64,
	repo ports.ScenarioRepository,
) (validation.RequestViolations, error) {
	s, err := repo.GetScenario(ctx, scenarioID)
	if err != nil {
		return validation.RequestViolations{}, fmt.Errorf("validate scenario: get scenario %d: %w", scenarioID, err)
	}

	return validation.ValidateRequest(s, idSet(ignoredShipmentIDs), idSet(ignoredVehicleIDs)), nil
}

// ValidateVisitPlacement loads a stored scenario and checks one hypothetical
// visit placement against it.
func ValidateVisitPlacement(
	ctx context.Context,
	scenarioID int64,
	target *domain.Visit,
	companion *domain.Visit,
	repo ports.ScenarioRepository,
) (*validation.VisitViolations, error) {
	s, err := repo.GetScenario(ctx, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("validate visit: get scenario %d: %w", scenarioID, err)
	}

	return validation.ValidateVisit(s, target, companion), nil
}

func idSet(ids []int64) map[int64]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
