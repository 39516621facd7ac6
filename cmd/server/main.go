package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"scenario-validation-service/internal/adapters/cache"
	"scenario-validation-service/internal/adapters/repositories"
	"scenario-validation-service/internal/adapters/solver"
	"scenario-validation-service/internal/api"
	"scenario-validation-service/internal/platform/db"
	"scenario-validation-service/internal/platform/logger"
	"scenario-validation-service/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, the solver client) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		// Not an error for deployments configured purely via environment.
		os.Stderr.WriteString("No .env file found (using environment variables)\n")
	}

	env := getEnv("APP_ENV", "development")
	if err := logger.Init(env, getEnv("LOG_LEVEL", "info")); err != nil {
		os.Stderr.WriteString("logger init failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer database.Close()

	// Initialize schema (and optionally seed demo data) on startup for
	// local runs.
	if err := repositories.InitSchema(database); err != nil {
		log.Fatal("init schema", zap.Error(err))
	}
	if seedPath := os.Getenv("SEED_PATH"); seedPath != "" {
		if err := repositories.SeedFromJSON(database, seedPath); err != nil {
			log.Fatal("seed scenarios", zap.Error(err))
		}
	}

	repo := repositories.NewPostgresScenarioRepository(database)

	// Solver responses are cached by scenario content hash when Redis is
	// configured; without it every solve hits the solver.
	var solutionCache ports.SolutionCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c, err := cache.NewRedisSolutionCache(redisURL)
		if err != nil {
			log.Fatal("connect redis", zap.Error(err))
		}
		defer c.Close()
		solutionCache = c
		log.Info("solution cache enabled")
	} else {
		log.Warn("REDIS_URL not set; solution caching disabled")
	}

	solverClient, err := buildSolver(log)
	if err != nil {
		log.Fatal("configure solver", zap.Error(err))
	}

	router := api.NewRouter(repo, solutionCache, solverClient)

	// Timeouts are tuned for slow remote solves (external API latency).
	port := getEnv("PORT", "8080")
	log.Info("server listening", zap.String("addr", ":"+port))
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      180 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}

// buildSolver picks the remote optimizer when an endpoint is configured and
// falls back to the local greedy heuristic otherwise.
func buildSolver(log *zap.Logger) (ports.SolverClient, error) {
	baseURL := strings.TrimSpace(os.Getenv("SOLVER_URL"))
	if baseURL == "" {
		log.Warn("SOLVER_URL not set; using local greedy solver")
		return solver.NewGreedySolver(), nil
	}

	apiKey := os.Getenv("SOLVER_API_KEY")
	client, err := solver.NewHTTPSolverClient(baseURL, apiKey)
	if err != nil {
		return nil, err
	}
	log.Info("remote solver configured", zap.String("base_url", baseURL))
	return client, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
