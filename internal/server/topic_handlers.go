package server

import (
	"github.com/bphaengsrisara/web-board-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTopics handles GET /api/topics
func (s *Server) GetTopics(c *fiber.Ctx) error {
	topics, err := s.topicRepo.List(c.UserContext())
	if err != nil {
		logError(c, "topic listing failed", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(topics)
}
