package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bphaengsrisara/web-board-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostRepository_GetByIDHydrates(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	repo := NewPostRepository(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	history := createTopic(t, db, "History")

	post := &models.Post{
		Title:    "On castles",
		Content:  "They had moats.",
		AuthorID: alice.ID,
		Topics:   []models.Topic{history},
	}
	require.NoError(t, repo.Create(ctx, post))

	comment := models.Comment{Content: "And drawbridges.", PostID: post.ID, AuthorID: bob.ID}
	require.NoError(t, db.Create(&comment).Error)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Author.Username)
	require.Len(t, got.Topics, 1)
	assert.Equal(t, "History", got.Topics[0].Name)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "bob", got.Comments[0].Author.Username)

	_, err = repo.GetByID(ctx, 9999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPostRepository_ListFiltersCompose(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	repo := NewPostRepository(db)

	alice := createUser(t, db, "alice")
	topicA := createTopic(t, db, "History")
	topicB := createTopic(t, db, "Food")

	p1 := &models.Post{Title: "hello", Content: "plain greeting", AuthorID: alice.ID, Topics: []models.Topic{topicA}}
	p2 := &models.Post{Title: "world report", Content: "news", AuthorID: alice.ID, Topics: []models.Topic{topicB}}
	p3 := &models.Post{Title: "worldwide", Content: "atlas", AuthorID: alice.ID, Topics: []models.Topic{topicA}}
	for _, p := range []*models.Post{p1, p2, p3} {
		require.NoError(t, repo.Create(ctx, p))
	}

	// Topic alone.
	got, err := repo.List(ctx, PostFilter{TopicID: &topicA.ID})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Search alone matches title or content.
	got, err = repo.List(ctx, PostFilter{Search: "world"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Conjunction: topic A AND "world" leaves exactly p3.
	got, err = repo.List(ctx, PostFilter{TopicID: &topicA.ID, Search: "world"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, p3.ID, got[0].ID)

	// Author filter.
	other := createUser(t, db, "bob")
	got, err = repo.List(ctx, PostFilter{AuthorID: &other.ID})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostRepository_ListOrdersByActivity(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	repo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)

	alice := createUser(t, db, "alice")

	older := &models.Post{Title: "older", Content: "c", AuthorID: alice.ID}
	require.NoError(t, repo.Create(ctx, older))
	time.Sleep(10 * time.Millisecond)
	newer := &models.Post{Title: "newer", Content: "c", AuthorID: alice.ID}
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.List(ctx, PostFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].Title)

	// A comment on the older post moves it to the front.
	time.Sleep(10 * time.Millisecond)
	comment := &models.Comment{Content: "bump", PostID: older.ID, AuthorID: alice.ID}
	require.NoError(t, commentRepo.Create(ctx, comment))

	got, err = repo.List(ctx, PostFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "older", got[0].Title)
}

func TestPostRepository_ReplaceTopics(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	repo := NewPostRepository(db)

	alice := createUser(t, db, "alice")
	topicA := createTopic(t, db, "History")
	topicB := createTopic(t, db, "Food")

	post := &models.Post{Title: "t", Content: "c", AuthorID: alice.ID, Topics: []models.Topic{topicA}}
	require.NoError(t, repo.Create(ctx, post))

	require.NoError(t, repo.ReplaceTopics(ctx, post, []models.Topic{topicB}))
	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, got.Topics, 1)
	assert.Equal(t, "Food", got.Topics[0].Name)

	// Empty set clears all links.
	require.NoError(t, repo.ReplaceTopics(ctx, post, []models.Topic{}))
	got, err = repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Topics)
}

func TestPostRepository_DeleteRemovesCommentsAndLinks(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	repo := NewPostRepository(db)

	alice := createUser(t, db, "alice")
	topic := createTopic(t, db, "Pets")

	post := &models.Post{Title: "t", Content: "c", AuthorID: alice.ID, Topics: []models.Topic{topic}}
	require.NoError(t, repo.Create(ctx, post))
	require.NoError(t, db.Create(&models.Comment{Content: "a", PostID: post.ID, AuthorID: alice.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{Content: "b", PostID: post.ID, AuthorID: alice.ID}).Error)

	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var commentCount int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount).Error)
	assert.Zero(t, commentCount)

	var linkCount int64
	require.NoError(t, db.Table("post_topics").Where("post_id = ?", post.ID).Count(&linkCount).Error)
	assert.Zero(t, linkCount)

	// The topic catalog itself is untouched.
	var topicCount int64
	require.NoError(t, db.Model(&models.Topic{}).Count(&topicCount).Error)
	assert.EqualValues(t, 1, topicCount)
}

func TestPostRepository_UpdateWritesTitleAndContentOnly(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	repo := NewPostRepository(db)

	alice := createUser(t, db, "alice")
	post := &models.Post{Title: "old", Content: "old body", AuthorID: alice.ID}
	require.NoError(t, repo.Create(ctx, post))

	post.Title = "new"
	post.Content = "new body"
	require.NoError(t, repo.Update(ctx, post))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "new body", got.Content)
	assert.Equal(t, alice.ID, got.AuthorID)
}
