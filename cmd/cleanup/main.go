package main

import (
	"context"
	"log"
	"os"
	"time"

	"homeserve/internal/database"
	"homeserve/internal/repository"
)

// One-shot purge of expired password-reset tokens, for deployments that
// run cleanup from an external scheduler instead of the API process.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	resetRepo := repository.NewPasswordResetRepository(db)
	n, err := resetRepo.DeleteExpired(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("cleanup password_reset_tokens failed: %v", err)
	}

	log.Printf("cleanup completed: password_reset_tokens=%d", n)
}
