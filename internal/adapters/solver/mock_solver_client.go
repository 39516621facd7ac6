package solver

import (
	"context"

	"scenario-validation-service/internal/domain"
)

// MockSolverClient returns a canned solution (or error) and counts calls.
type MockSolverClient struct {
	Solution *domain.Solution
	Err      error
	Calls    int
}

func (m *MockSolverClient) Solve(ctx context.Context, s *domain.Scenario) (*domain.Solution, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Solution, nil
}
