package repository

import (
	"context"

	"github.com/bphaengsrisara/web-board-backend/internal/models"

	"gorm.io/gorm"
)

// PostFilter narrows List results. All fields are optional and compose
// conjunctively.
type PostFilter struct {
	AuthorID *uint
	TopicID  *uint
	Search   string
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, filter PostFilter) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	ReplaceTopics(ctx context.Context, post *models.Post, topics []models.Topic) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID returns the fully hydrated post: author, topics, and comments with
// their authors.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Topics").
		Preload("Comments").
		Preload("Comments.Author").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns hydrated posts ordered by most recent activity first
// (updated_at is bumped on every comment write under the post).
func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]*models.Post, error) {
	var posts []*models.Post

	q := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Preload("Author").
		Preload("Topics").
		Preload("Comments").
		Preload("Comments.Author")

	if filter.AuthorID != nil {
		q = q.Where("posts.author_id = ?", *filter.AuthorID)
	}
	if filter.TopicID != nil {
		q = q.Joins("JOIN post_topics ON post_topics.post_id = posts.id").
			Where("post_topics.topic_id = ?", *filter.TopicID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where(r.searchClause(), like, like)
	}

	err := q.Order("posts.updated_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// searchClause picks the case-insensitive match operator for the dialect.
// ILIKE is postgres-only; sqlite's LIKE is already case-insensitive for ASCII.
func (r *postRepository) searchClause() string {
	if r.db.Dialector.Name() == "postgres" {
		return "posts.title ILIKE ? OR posts.content ILIKE ?"
	}
	return "posts.title LIKE ? OR posts.content LIKE ?"
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).
		Model(post).
		Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
		}).Error
}

// ReplaceTopics swaps the post's topic set for the given one. An empty slice
// clears all topics.
func (r *postRepository) ReplaceTopics(ctx context.Context, post *models.Post, topics []models.Topic) error {
	return r.db.WithContext(ctx).Model(post).Association("Topics").Replace(topics)
}

// Delete hard-deletes the post together with its comments and topic links in
// a single transaction.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_topics WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
