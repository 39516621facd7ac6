package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	"scenario-validation-service/internal/adapters/repositories"
	"scenario-validation-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "data/seeds/scenarios.json"
	}
	if err := initAndSeed(database, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(database *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(database); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(database, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
