package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scenario-validation-service/internal/domain"
	"scenario-validation-service/internal/platform/logger"
	"scenario-validation-service/internal/platform/obs"
	"scenario-validation-service/internal/ports"

	"go.uber.org/zap"
)

// Cached solver responses outlive a typical editing session but not a
// changed pricing day.
const solutionCacheTTL = time.Hour

type SolveScenarioRequest struct {
	ScenarioID int64
	// SkipCache forces a fresh solver call even when a cached solution exists.
	SkipCache bool
}

// SolveScenario obtains a routing solution for a stored scenario.
//
// The scenario document's content hash keys the cache: two byte-identical
// documents share a solution, and any edit invalidates naturally. Cache
// failures are logged and degrade to a solver call rather than failing the
// request.
func SolveScenario(
	ctx context.Context,
	req SolveScenarioRequest,
	repo ports.ScenarioRepository,
	cache ports.SolutionCache,
	client ports.SolverClient,
) (_ *domain.Solution, err error) {
	defer obs.Time(ctx, "services.SolveScenario")(&err)

	s, err := repo.GetScenario(ctx, req.ScenarioID)
	if err != nil {
		return nil, fmt.Errorf("solve scenario: get scenario %d: %w", req.ScenarioID, err)
	}

	doc, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("solve scenario: encode scenario %d: %w", req.ScenarioID, err)
	}
	key := solutionKey(doc)

	if cache != nil && !req.SkipCache {
		if sol, ok := cachedSolution(ctx, cache, key); ok {
			return sol, nil
		}
	}

	sol, err := client.Solve(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("solve scenario %d: %w", req.ScenarioID, err)
	}

	if cache != nil {
		if b, err := json.Marshal(sol); err == nil {
			if err := cache.Set(ctx, key, b, solutionCacheTTL); err != nil {
				logger.Get().Warn("solution cache store failed", zap.String("key", key), zap.Error(err))
			}
		}
	}

	if err := repo.SaveSolution(ctx, req.ScenarioID, sol); err != nil {
		return nil, fmt.Errorf("solve scenario %d: persist solution: %w", req.ScenarioID, err)
	}

	return sol, nil
}

func solutionKey(scenarioDoc []byte) string {
	sum := sha256.Sum256(scenarioDoc)
	return "solution:" + hex.EncodeToString(sum[:])
}

func cachedSolution(ctx context.Context, cache ports.SolutionCache, key string) (*domain.Solution, bool) {
	b, err := cache.Get(ctx, key)
	if errors.Is(err, ports.ErrCacheMiss) {
		return nil, false
	}
	if err != nil {
		logger.Get().Warn("solution cache lookup failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var sol domain.Solution
	if err := json.Unmarshal(b, &sol); err != nil {
		logger.Get().Warn("solution cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &sol, true
}
