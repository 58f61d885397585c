package server

import (
	"caseboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UploadFile accepts a multipart file and stores it under a generated name.
// The response carries the public URL and the original filename so the
// client can keep showing the name the user picked (public)
func (s *Server) UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("No file provided"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid file"))
	}
	defer func() { _ = src.Close() }()

	stored, err := s.uploadService.Store(fileHeader.Filename, src)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(stored)
}
