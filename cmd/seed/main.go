package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"

	"contra-api/internal/config"
	"contra-api/internal/database"
	"contra-api/internal/logger"
	"contra-api/internal/models"
)

// Seeds a local database with a users table and sample rows.
func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.Load()

	db, err := database.Connect(ctx, cfg.Database, logger.NewConsoleLogger(log.Writer()))
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Creating tables...")
	if err := createTables(ctx, db); err != nil {
		log.Fatalf("❌ Failed to create tables: %v", err)
	}

	log.Println("Seeding sample data...")
	n, err := seedUsers(ctx, db)
	if err != nil {
		log.Fatalf("❌ Failed to seed users: %v", err)
	}

	log.Printf("✅ Done. %d users inserted.", n)
}

func createTables(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(ctx)
	return err
}

func sampleUsers() []models.User {
	now := time.Now()
	return []models.User{
		{
			ID:        "1",
			Name:      "Alice Wonderland",
			Email:     "alice@example.com",
			Bio:       models.StringPtr("Brand designer working with early-stage startups."),
			Location:  models.StringPtr("Lisbon, Portugal"),
			Website:   models.StringPtr("https://alice.design"),
			Company:   models.StringPtr("Studio Wonder"),
			CreatedAt: now,
		},
		{
			ID:        "2",
			Name:      "Bob Builder",
			Email:     "bob@example.com",
			Bio:       models.StringPtr("Full-stack engineer."),
			CreatedAt: now,
		},
		{
			ID:        "3",
			Name:      "Carol Chen",
			Email:     "carol@example.com",
			Location:  models.StringPtr("Toronto, Canada"),
			Company:   models.StringPtr("Freelance"),
			CreatedAt: now,
		},
	}
}

func seedUsers(ctx context.Context, db *bun.DB) (int64, error) {
	users := sampleUsers()
	res, err := db.NewInsert().Model(&users).On("CONFLICT (id) DO NOTHING").Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
