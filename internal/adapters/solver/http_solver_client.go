package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"scenario-validation-service/internal/domain"
	"scenario-validation-service/internal/platform/obs"
)

// HTTPSolverClient implements SolverClient against the remote optimizer's
// REST endpoint. Solve calls are long-running on the remote side, so the
// request timeout is generous and transient failures are retried with
// backoff.
//
// The client is safe for concurrent use.
type HTTPSolverClient struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewHTTPSolverClient(baseURL, apiKey string) (*HTTPSolverClient, error) {
	if baseURL == "" {
		return nil, errors.New("solver base URL is empty")
	}
	if apiKey == "" {
		return nil, errors.New("solver api key is empty")
	}

	client := &HTTPSolverClient{
		session: &http.Client{Timeout: 120 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}

	return client, nil
}

type solveRequest struct {
	Scenario *domain.Scenario `json:"scenario"`
}

// Solve submits the scenario and decodes the returned solution.
func (c *HTTPSolverClient) Solve(ctx context.Context, s *domain.Scenario) (_ *domain.Solution, err error) {
	defer obs.Time(ctx, "solver.http.Solve")(&err)

	if s == nil {
		return nil, errors.New("solve: scenario is nil")
	}

	payload, err := json.Marshal(solveRequest{Scenario: s})
	if err != nil {
		return nil, fmt.Errorf("solve: encode scenario: %w", err)
	}

	endpoint := c.baseURL + "/v1/scenarios:solve"

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("solve: call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	var sol domain.Solution
	if err := json.NewDecoder(resp.Body).Decode(&sol); err != nil {
		return nil, fmt.Errorf("solve: decode solution: %w", err)
	}

	return &sol, nil
}
