package server

import (
	"github.com/bphaengsrisara/web-board-backend/internal/models"
	"github.com/bphaengsrisara/web-board-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// postListInput builds the shared topicId/search filter from query params.
func postListInput(c *fiber.Ctx) service.ListPostsInput {
	in := service.ListPostsInput{
		Search: c.Query("search"),
	}
	if topicID := c.QueryInt("topicId", 0); topicID > 0 {
		id := uint(topicID)
		in.TopicID = &id
	}
	return in
}

// GetPosts handles GET /api/posts (public)
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext(), postListInput(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetMyPosts handles GET /api/posts/my-posts: the same filters as GetPosts,
// scoped to the authenticated caller.
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	in := postListInput(c)
	in.AuthorID = &userID

	posts, err := s.postService.ListPosts(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		TopicIDs []uint `json:"topicIds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		AuthorID: userID,
		Title:    req.Title,
		Content:  req.Content,
		TopicIDs: req.TopicIDs,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PATCH /api/posts/:id (owner only).
// Omitting topicIds leaves the topic set untouched; supplying it (even empty)
// replaces the set entirely.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title    string  `json:"title"`
		Content  string  `json:"content"`
		TopicIDs *[]uint `json:"topicIds"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:   userID,
		PostID:   postID,
		Title:    req.Title,
		Content:  req.Content,
		TopicIDs: req.TopicIDs,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id (owner only)
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}
