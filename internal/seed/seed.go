// Package seed provides idempotent seeding of the topic catalog.
package seed

import (
	"log/slog"

	"github.com/bphaengsrisara/web-board-backend/internal/middleware"
	"github.com/bphaengsrisara/web-board-backend/internal/models"

	"gorm.io/gorm"
)

// topicNames is the fixed catalog. Topics are read-only to the API; re-running
// the seeder is a no-op for names that already exist.
var topicNames = []string{
	"History",
	"Food",
	"Pets",
	"Health",
	"Fashion",
	"Exercise",
	"Others",
}

// Topics upserts the topic catalog.
func Topics(db *gorm.DB) error {
	for _, name := range topicNames {
		topic := models.Topic{Name: name}
		if err := db.Where(models.Topic{Name: name}).FirstOrCreate(&topic).Error; err != nil {
			return err
		}
	}
	middleware.Logger.Info("Topic catalog seeded", slog.Int("topics", len(topicNames)))
	return nil
}
