package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"scenario-validation-service/internal/api/dto"
	"scenario-validation-service/internal/platform/logger"
	"scenario-validation-service/internal/ports"
	"scenario-validation-service/internal/services"

	"go.uber.org/zap"
)

// ValidationHandler exposes the advisory scenario validator. Violations are
// data for the caller to render, never request failures.
type ValidationHandler struct {
	Repo ports.ScenarioRepository
}

// ValidateScenario runs the request-level checks over a stored scenario.
// The body is optional; an empty body means nothing is ignored.
func (h *ValidationHandler) ValidateScenario(w http.ResponseWriter, r *http.Request) {
	id, ok := scenarioID(w, r)
	if !ok {
		return
	}

	var req dto.ValidateScenarioRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	violations, err := services.ValidateScenario(r.Context(), id, req.IgnoredShipmentIDs, req.IgnoredVehicleIDs, h.Repo)
	if errors.Is(err, ports.ErrScenarioNotFound) {
		writeError(w, r, http.StatusNotFound, "scenario not found")
		return
	}
	if err != nil {
		logger.Get().Error("validate scenario failed", zap.Int64("scenario_id", id), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ValidateScenarioResponse{Violations: violations})
}

// ValidateVisit checks one hypothetical visit placement (and its optional
// companion) against a stored scenario.
func (h *ValidationHandler) ValidateVisit(w http.ResponseWriter, r *http.Request) {
	id, ok := scenarioID(w, r)
	if !ok {
		return
	}

	var req dto.ValidateVisitRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.Visit == nil {
		writeError(w, r, http.StatusBadRequest, "visit is required")
		return
	}

	violations, err := services.ValidateVisitPlacement(r.Context(), id, req.Visit, req.Companion, h.Repo)
	if errors.Is(err, ports.ErrScenarioNotFound) {
		writeError(w, r, http.StatusNotFound, "scenario not found")
		return
	}
	if err != nil {
		logger.Get().Error("validate visit failed", zap.Int64("scenario_id", id), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ValidateVisitResponse{Violations: violations})
}

// decodeOptionalBody decodes a single JSON object, treating an empty body as
// the zero value. A false return means an error response was written.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	err := dec.Decode(v)
	if err == io.EOF {
		return true
	}
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}
