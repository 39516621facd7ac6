package ports

import (
	"context"
	"errors"
	"time"

	"scenario-validation-service/internal/domain"
)

// ErrScenarioNotFound is returned when no scenario exists for the given id.
var ErrScenarioNotFound = errors.New("scenario not found")

// ErrSolutionNotFound is returned when a scenario has no stored solution.
var ErrSolutionNotFound = errors.New("solution not found")

// ScenarioSummary is a listing row for stored scenarios.
type ScenarioSummary struct {
	ScenarioID int64
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Port: a boundary for persisting and retrieving routing scenarios and
// their solutions.
type ScenarioRepository interface {
	// List summaries for every stored scenario.
	ListScenarios(ctx context.Context) ([]ScenarioSummary, error)
	// Retrieve one scenario document.
	GetScenario(ctx context.Context, scenarioID int64) (*domain.Scenario, error)
	// Store a new scenario document and return its assigned id.
	CreateScenario(ctx context.Context, name string, s *domain.Scenario) (int64, error)
	// Store (or replace) the solution for a scenario.
	SaveSolution(ctx context.Context, scenarioID int64, sol *domain.Solution) error
	// Retrieve the stored solution for a scenario.
	GetSolution(ctx context.Context, scenarioID int64) (*domain.Solution, error)
}
