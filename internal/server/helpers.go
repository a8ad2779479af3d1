package server

import (
	"errors"
	"log/slog"

	"github.com/bphaengsrisara/web-board-backend/internal/middleware"
	"github.com/bphaengsrisara/web-board-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts the :id route parameter as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondServiceError maps a service-layer error onto the wire: the AppError
// code picks the status, and non-client errors are logged with their cause.
func respondServiceError(c *fiber.Ctx, err error) error {
	status := models.StatusForError(err)
	if status >= fiber.StatusInternalServerError {
		logError(c, "request failed", err)
	}
	return models.RespondWithError(c, status, err)
}

// logError records the full cause server-side; the wire response stays generic.
func logError(c *fiber.Ctx, msg string, err error) {
	middleware.Logger.ErrorContext(c.UserContext(), msg, slog.String("error", err.Error()))
}
