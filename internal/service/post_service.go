package service

import (
	"context"
	"errors"

	"github.com/bphaengsrisara/web-board-backend/internal/models"
	"github.com/bphaengsrisara/web-board-backend/internal/repository"

	"gorm.io/gorm"
)

const (
	maxTitleLen   = 300
	maxContentLen = 50000
)

// PostService implements the post flow: validation, topic filtering, and the
// existence-then-ownership guard on every mutation.
type PostService struct {
	postRepo  repository.PostRepository
	topicRepo repository.TopicRepository
}

type CreatePostInput struct {
	AuthorID uint
	Title    string
	Content  string
	TopicIDs []uint
}

type ListPostsInput struct {
	AuthorID *uint
	TopicID  *uint
	Search   string
}

// UpdatePostInput carries a partial update. A nil TopicIDs leaves the topic
// set untouched; a non-nil value (even an empty list) replaces it entirely.
type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Title    string
	Content  string
	TopicIDs *[]uint
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

// NewPostService creates a new post service
func NewPostService(postRepo repository.PostRepository, topicRepo repository.TopicRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		topicRepo: topicRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	// Unknown topic ids are dropped, not an error: the catalog lookup simply
	// omits them.
	topics, err := s.topicRepo.GetByIDs(ctx, in.TopicIDs)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: in.AuthorID,
		Topics:   topics,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.getHydrated(ctx, post.ID)
}

// ListPosts returns posts ordered by most recent activity, narrowed by any
// combination of author, topic membership, and title/content search.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	return s.postRepo.List(ctx, repository.PostFilter{
		AuthorID: in.AuthorID,
		TopicID:  in.TopicID,
		Search:   in.Search,
	})
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.getHydrated(ctx, id)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.getHydrated(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if err := AssertOwner(in.UserID, post); err != nil {
		return nil, err
	}

	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	if in.TopicIDs != nil {
		topics, err := s.topicRepo.GetByIDs(ctx, *in.TopicIDs)
		if err != nil {
			return nil, err
		}
		if topics == nil {
			topics = []models.Topic{}
		}
		if err := s.postRepo.ReplaceTopics(ctx, post, topics); err != nil {
			return nil, err
		}
	}

	return s.getHydrated(ctx, in.PostID)
}

// DeletePost removes the post and, through the storage layer, all of its
// comments. The deleted post (as last seen) is returned to the caller.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) (*models.Post, error) {
	post, err := s.getHydrated(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if err := AssertOwner(in.UserID, post); err != nil {
		return nil, err
	}

	if err := s.postRepo.Delete(ctx, in.PostID); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) getHydrated(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return post, nil
}
