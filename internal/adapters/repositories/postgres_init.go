package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"scenario-validation-service/internal/domain"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createScenariosQuery := `
	CREATE TABLE IF NOT EXISTS scenarios (
		scenario_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		document JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createSolutionsQuery := `
	CREATE TABLE IF NOT EXISTS solutions (
		scenario_id BIGINT PRIMARY KEY REFERENCES scenarios(scenario_id) ON DELETE CASCADE,
		document JSONB NOT NULL,
		solved_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_scenarios_updated_at
	ON scenarios(updated_at);
	`

	statements := []string{
		createScenariosQuery,
		createSolutionsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ScenarioSeed struct {
	Name     string          `json:"name"`
	Scenario json.RawMessage `json:"scenario"`
}

// Populate the database with scenario documents from a JSON file. Existing
// scenarios with the same name are replaced.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed scenarios: read %q: %w", jsonPath, err)
	}

	var data []ScenarioSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed scenarios: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed scenarios: item at index %d: name cannot be empty", i+1)
		}

		var s domain.Scenario
		if err := json.Unmarshal(item.Scenario, &s); err != nil {
			return fmt.Errorf("seed scenarios: item %q: parse scenario: %w", item.Name, err)
		}
		if err := s.CheckReferences(); err != nil {
			return fmt.Errorf("seed scenarios: item %q: %w", item.Name, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed scenarios: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO scenarios (name, document, created_at, updated_at)
	VALUES ($1, $2, now(), now())
	ON CONFLICT (name) DO UPDATE
	SET document = EXCLUDED.document,
		updated_at = now();
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed scenarios: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range data {
		if _, err := stmt.Exec(item.Name, []byte(item.Scenario)); err != nil {
			return fmt.Errorf("seed scenarios: insert %q: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed scenarios: commit tx: %w", err)
	}

	return nil
}
