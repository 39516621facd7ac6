package ports

import (
	"context"

	"scenario-validation-service/internal/domain"
)

// Contract for obtaining an optimized routing solution for a scenario. The
// remote optimizer is the normal implementation; a local heuristic can stand
// in when no endpoint is configured.
type SolverClient interface {
	// Compute routes and scheduled visits for the scenario.
	Solve(ctx context.Context, s *domain.Scenario) (*domain.Solution, error)
}
