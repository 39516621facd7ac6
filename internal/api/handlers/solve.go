package handlers

import (
	"errors"
	"net/http"

	"scenario-validation-service/internal/api/dto"
	"scenario-validation-service/internal/platform/logger"
	"scenario-validation-service/internal/ports"
	"scenario-validation-service/internal/services"

	"go.uber.org/zap"
)

// SolveHandler orchestrates solver calls for stored scenarios.
type SolveHandler struct {
	Repo   ports.ScenarioRepository
	Cache  ports.SolutionCache
	Solver ports.SolverClient
}

// Solve obtains (or re-uses a cached) routing solution for a scenario.
// The body is optional; an empty body uses the cache when possible.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	id, ok := scenarioID(w, r)
	if !ok {
		return
	}

	var req dto.SolveRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	svcReq := services.SolveScenarioRequest{
		ScenarioID: id,
		SkipCache:  req.SkipCache,
	}

	sol, err := services.SolveScenario(r.Context(), svcReq, h.Repo, h.Cache, h.Solver)
	if errors.Is(err, ports.ErrScenarioNotFound) {
		writeError(w, r, http.StatusNotFound, "scenario not found")
		return
	}
	if err != nil {
		logger.Get().Error("solve scenario failed", zap.Int64("scenario_id", id), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SolveResponse{ScenarioID: id, Solution: sol})
}

// GetSolution returns the most recently persisted solution for a scenario.
func (h *SolveHandler) GetSolution(w http.ResponseWriter, r *http.Request) {
	id, ok := scenarioID(w, r)
	if !ok {
		return
	}

	sol, err := h.Repo.GetSolution(r.Context(), id)
	if errors.Is(err, ports.ErrSolutionNotFound) {
		writeError(w, r, http.StatusNotFound, "no solution stored for scenario")
		return
	}
	if err != nil {
		logger.Get().Error("get solution failed", zap.Int64("scenario_id", id), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SolveResponse{ScenarioID: id, Solution: sol})
}
