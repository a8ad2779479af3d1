package repository

import (
	"context"

	"github.com/bphaengsrisara/web-board-backend/internal/models"

	"gorm.io/gorm"
)

// TopicRepository defines the interface for topic catalog lookups. The catalog
// is read-only within the live system; rows come from cmd/seed.
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Topic, error)
}

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) List(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	if err := r.db.WithContext(ctx).Order("id").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// GetByIDs returns only the topics that exist; unknown ids are simply absent
// from the result, which is how unknown topic ids get dropped on post writes.
func (r *topicRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Topic, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var topics []models.Topic
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}
