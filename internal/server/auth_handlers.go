package server

import (
	"time"

	"github.com/bphaengsrisara/web-board-backend/internal/middleware"
	"github.com/bphaengsrisara/web-board-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SignIn handles POST /api/auth/sign-in.
//
// The username resolves to an existing user or registers a new one; the
// resulting token is set as an HTTP-only cookie. Persistence failures are
// logged with their cause but surface as a generic 401.
func (s *Server) SignIn(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	token, _, err := s.authService.SignIn(c.UserContext(), req.Username)
	if err != nil {
		status := models.StatusForError(err)
		if status == fiber.StatusBadRequest {
			middleware.SignInsTotal.WithLabelValues("rejected").Inc()
		} else {
			middleware.SignInsTotal.WithLabelValues("failed").Inc()
			logError(c, "sign-in failed", err)
		}
		return models.RespondWithError(c, status, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     accessTokenCookie,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})

	middleware.SignInsTotal.WithLabelValues("success").Inc()
	return c.JSON(fiber.Map{"message": "Sign-in successful"})
}

// SignOut handles POST /api/auth/sign-out. There is no server-side session to
// invalidate; clearing the cookie always succeeds.
func (s *Server) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})

	return c.JSON(fiber.Map{"message": "Sign-out successful"})
}
