package dto

import (
	"scenario-validation-service/internal/domain"
	"scenario-validation-service/internal/validation"
)

type ValidateScenarioRequest struct {
	IgnoredShipmentIDs []int64 `json:"ignored_shipment_ids"`
	IgnoredVehicleIDs  []int64 `json:"ignored_vehicle_ids"`
}

type ValidateScenarioResponse struct {
	Violations validation.RequestViolations `json:"violations"`
}

type ValidateVisitRequest struct {
	Visit     *domain.Visit `json:"visit"`
	Companion *domain.Visit `json:"companion"`
}

// Violations is null when the placement is clean.
type ValidateVisitResponse struct {
	Violations *validation.VisitViolations `json:"violations"`
}
