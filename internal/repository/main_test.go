package repository

import (
	"testing"

	"github.com/bphaengsrisara/web-board-backend/internal/database"
	"github.com/bphaengsrisara/web-board-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own in-memory sqlite database with the full
// schema applied. The pool is pinned to one connection; sqlite would otherwise
// hand every pooled connection its own empty :memory: database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createTopic(t *testing.T, db *gorm.DB, name string) models.Topic {
	t.Helper()
	topic := models.Topic{Name: name}
	if err := db.Create(&topic).Error; err != nil {
		t.Fatalf("create topic %s: %v", name, err)
	}
	return topic
}
