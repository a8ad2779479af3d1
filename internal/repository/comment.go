package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bphaengsrisara/web-board-backend/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
//
// Every mutation also bumps the parent post's updated_at inside the same
// transaction, so posts sorted by recent activity stay consistent: either the
// comment write and the touch both land, or neither does.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return touchPost(tx, comment.PostID)
	})
}

// GetByID returns the hydrated comment with its author and parent post.
func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Post").
		First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(comment).Update("content", comment.Content).Error; err != nil {
			return err
		}
		return touchPost(tx, comment.PostID)
	})
}

// Delete removes the comment and touches the parent post. A comment that has
// already disappeared is not an error at this layer: the touch is skipped and
// the transaction commits empty. Callers perform their own existence check.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&models.Comment{}, id).Error; err != nil {
			return err
		}
		return touchPost(tx, comment.PostID)
	})
}

// touchPost bumps the parent post's updated_at so activity-ordered listings
// move the post to the front. Local time keeps the stored representation
// consistent with the timestamps GORM writes itself.
func touchPost(tx *gorm.DB, postID uint) error {
	return tx.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("updated_at", time.Now()).Error
}
