package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"scenario-validation-service/internal/api/dto"
	"scenario-validation-service/internal/platform/logger"
	"scenario-validation-service/internal/ports"

	"go.uber.org/zap"
)

// ScenarioHandler exposes scenario storage endpoints.
type ScenarioHandler struct {
	Repo ports.ScenarioRepository
}

func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Repo.ListScenarios(r.Context())
	if err != nil {
		logger.Get().Error("list scenarios failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListScenariosResponse{
		Scenarios: make([]dto.ScenarioSummaryResponse, 0, len(summaries)),
	}
	for _, s := range summaries {
		res.Scenarios = append(res.Scenarios, dto.ScenarioSummaryResponse{
			ScenarioID: s.ScenarioID,
			Name:       s.Name,
			CreatedAt:  s.CreatedAt,
			UpdatedAt:  s.UpdatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ScenarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScenarioRequest

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

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}
	if req.Scenario == nil {
		writeError(w, r, http.StatusBadRequest, "scenario is required")
		return
	}
	if err := req.Scenario.CheckReferences(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.Repo.CreateScenario(r.Context(), req.Name, req.Scenario)
	if err != nil {
		logger.Get().Error("create scenario failed", zap.String("name", req.Name), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.CreateScenarioResponse{ScenarioID: id})
}

func (h *ScenarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := scenarioID(w, r)
	if !ok {
		return
	}

	s, err := h.Repo.GetScenario(r.Context(), id)
	if errors.Is(err, ports.ErrScenarioNotFound) {
		writeError(w, r, http.StatusNotFound, "scenario not found")
		return
	}
	if err != nil {
		logger.Get().Error("get scenario failed", zap.Int64("scenario_id", id), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ScenarioResponse{ScenarioID: id, Scenario: s})
}
