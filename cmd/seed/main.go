// Command seed populates the read-only topic catalog. Safe to re-run; topics
// that already exist are left untouched.
package main

import (
	"log"

	"github.com/bphaengsrisara/web-board-backend/internal/config"
	"github.com/bphaengsrisara/web-board-backend/internal/database"
	"github.com/bphaengsrisara/web-board-backend/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Topics(db); err != nil {
		log.Fatalf("Failed to seed topics: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}
