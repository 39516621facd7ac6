package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"scenario-validation-service/internal/domain"
	"scenario-validation-service/internal/ports"
)

// Postgres-backed implementation of the ScenarioRepository port. Scenario
// and solution documents are stored as JSONB alongside listing metadata.
type PostgresScenarioRepository struct{ DB *sql.DB }

func NewPostgresScenarioRepository(db *sql.DB) *PostgresScenarioRepository {
	return &PostgresScenarioRepository{DB: db}
}

// Return summaries for all stored scenarios.
func (r *PostgresScenarioRepository) ListScenarios(ctx context.Context) ([]ports.ScenarioSummary, error) {
	if r.DB == nil {
		return nil, errors.New("scenario repository: DB is nil")
	}

	query := `
	SELECT
		scenario_id,
		name,
		created_at,
		updated_at
	FROM scenarios
	ORDER BY scenario_id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: query scenarios table: %w", err)
	}
	defer rows.Close()

	summaries := make([]ports.ScenarioSummary, 0, 16)
	for rows.Next() {
		var s ports.ScenarioSummary
		if err := rows.Scan(&s.ScenarioID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list scenarios: scan row: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scenarios: row iteration: %w", err)
	}

	return summaries, nil
}

// Retrieve one scenario document by id.
func (r *PostgresScenarioRepository) GetScenario(ctx context.Context, scenarioID int64) (*domain.Scenario, error) {
	if r.DB == nil {
		return nil, errors.New("scenario repository: DB is nil")
	}

	var doc []byte
	query := `SELECT document FROM scenarios WHERE scenario_id = $1;`
	err := r.DB.QueryRowContext(ctx, query, scenarioID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrScenarioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get scenario %d: query scenarios table: %w", scenarioID, err)
	}

	var s domain.Scenario
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, fmt.Errorf("get scenario %d: parse document: %w", scenarioID, err)
	}

	return &s, nil
}

// Store a new scenario document and return its assigned id.
func (r *PostgresScenarioRepository) CreateScenario(ctx context.Context, name string, s *domain.Scenario) (int64, error) {
	if r.DB == nil {
		return 0, errors.New("scenario repository: DB is nil")
	}
	if s == nil {
		return 0, errors.New("create scenario: scenario is nil")
	}

	doc, err := json.Marshal(s)
	if err != nil {
		return 0, fmt.Errorf("create scenario: encode document: %w", err)
	}

	var id int64
	query := `
	INSERT INTO scenarios (name, document, created_at, updated_at)
	VALUES ($1, $2, now(), now())
	RETURNING scenario_id;
	`
	if err := r.DB.QueryRowContext(ctx, query, name, doc).Scan(&id); err != nil {
		return 0, fmt.Errorf("create scenario %q: insert: %w", name, err)
	}

	return id, nil
}

// Store or replace the solution for a scenario.
func (r *PostgresScenarioRepository) SaveSolution(ctx context.Context, scenarioID int64, sol *domain.Solution) error {
	if r.DB == nil {
		return errors.New("scenario repository: DB is nil")
	}
	if sol == nil {
		return errors.New("save solution: solution is nil")
	}

	doc, err := json.Marshal(sol)
	if err != nil {
		return fmt.Errorf("save solution: encode document: %w", err)
	}

	query := `
	INSERT INTO solutions (scenario_id, document, solved_at)
	VALUES ($1, $2, now())
	ON CONFLICT (scenario_id) DO UPDATE
	SET document = EXCLUDED.document,
		solved_at = now();
	`
	if _, err := r.DB.ExecContext(ctx, query, scenarioID, doc); err != nil {
		return fmt.Errorf("save solution for scenario %d: upsert: %w", scenarioID, err)
	}

	return nil
}

// Retrieve the stored solution for a scenario.
func (r *PostgresScenarioRepository) GetSolution(ctx context.Context, scenarioID int64) (*domain.Solution, error) {
	if r.DB == nil {
		return nil, errors.New("scenario repository: DB is nil")
	}

	var doc []byte
	query := `SELECT document FROM solutions WHERE scenario_id = $1;`
	err := r.DB.QueryRowContext(ctx, query, scenarioID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrSolutionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get solution for scenario %d: query solutions table: %w", scenarioID, err)
	}

	var sol domain.Solution
	if err := json.Unmarshal(doc, &sol); err != nil {
		return nil, fmt.Errorf("get solution for scenario %d: parse document: %w", scenarioID, err)
	}

	return &sol, nil
}
