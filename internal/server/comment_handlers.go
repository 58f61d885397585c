package server

import (
	"caseboard/internal/models"
	"caseboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddComment appends a comment to a case and returns the refreshed case,
// comments included, oldest first (public)
func (s *Server) AddComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Name string `json:"name"`
		Team string `json:"team"`
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	updated, err := s.commentService.AddComment(ctx, service.AddCommentInput{
		CaseID: id,
		Name:   req.Name,
		Team:   req.Team,
		Text:   req.Text,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"case": updated})
}
