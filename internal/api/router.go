package api

import (
	"net/http"

	"scenario-validation-service/internal/api/handlers"
	"scenario-validation-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(repo ports.ScenarioRepository, cache ports.SolutionCache, solver ports.SolverClient) http.Handler {
	mux := http.NewServeMux()

	scenarioHandler := &handlers.ScenarioHandler{Repo: repo}
	validationHandler := &handlers.ValidationHandler{Repo: repo}
	solveHandler := &handlers.SolveHandler{
		Repo:   repo,
		Cache:  cache,
		Solver: solver,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("GET /scenarios", scenarioHandler.List)
	mux.HandleFunc("POST /scenarios", scenarioHandler.Create)
	mux.HandleFunc("GET /scenarios/{id}", scenarioHandler.Get)
	mux.HandleFunc("POST /scenarios/{id}/validate", validationHandler.ValidateScenario)
	mux.HandleFunc("POST /scenarios/{id}/validate-visit", validationHandler.ValidateVisit)
	mux.HandleFunc("POST /scenarios/{id}/solve", solveHandler.Solve)
	mux.HandleFunc("GET /scenarios/{id}/solution", solveHandler.GetSolution)

	return requestIDMiddleware(loggingMiddleware(mux))
}
