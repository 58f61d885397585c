package server

import (
	"caseboard/internal/models"
	"caseboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListCases returns every active case, newest first (public)
func (s *Server) ListCases(c *fiber.Ctx) error {
	ctx := c.UserContext()

	cases, err := s.caseService.ListCases(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"cases": cases})
}

// CreateCase creates a new case (public)
func (s *Server) CreateCase(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Title   string   `json:"title"`
		Summary string   `json:"summary"`
		Detail  string   `json:"detail"`
		Tags    []string `json:"tags"`
		Owner   string   `json:"owner"`
		Impact  string   `json:"impact"`
		Date    string   `json:"date"`
		Image   *string  `json:"image_url"`
		PDF     *string  `json:"pdf_url"`
		PDFName *string  `json:"pdf_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	created, err := s.caseService.CreateCase(ctx, service.CreateCaseInput{
		Title:    req.Title,
		Summary:  req.Summary,
		Detail:   req.Detail,
		Tags:     req.Tags,
		Owner:    req.Owner,
		Impact:   req.Impact,
		Date:     req.Date,
		ImageURL: req.Image,
		PDFURL:   req.PDF,
		PDFName:  req.PDFName,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"case": created})
}

// GetCase returns a single active case with its comments (public)
func (s *Server) GetCase(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c)
	if err != nil {
		return nil
	}

	found, err := s.caseService.GetCase(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"case": found})
}

// UpdateCase applies a partial update to a case (public)
//
// The body is decoded into a map so presence can be distinguished from
// absence: fields missing from the body stay untouched, while fields sent
// as null or a non-string coerce to the empty string.
func (s *Server) UpdateCase(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c)
	if err != nil {
		return nil
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	var in service.UpdateCaseInput
	setString := func(key string, dst **string) {
		if v, ok := body[key]; ok {
			s := asString(v)
			*dst = &s
		}
	}
	setString("title", &in.Title)
	setString("summary", &in.Summary)
	setString("detail", &in.Detail)
	setString("owner", &in.Owner)
	setString("impact", &in.Impact)
	setString("date", &in.Date)
	setString("image_url", &in.ImageURL)
	setString("pdf_url", &in.PDFURL)
	setString("pdf_name", &in.PDFName)
	if v, ok := body["tags"]; ok {
		tags := asStringSlice(v)
		in.Tags = &tags
	}

	updated, err := s.caseService.UpdateCase(ctx, id, in)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"case": updated})
}

// DeleteCase soft-deletes a case; the row stays in the database but
// disappears from every read path (public)
func (s *Server) DeleteCase(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c)
	if err != nil {
		return nil
	}

	if err := s.caseService.SoftDeleteCase(ctx, id); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

// LikeCase increments the like counter and returns the refreshed case (public)
func (s *Server) LikeCase(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c)
	if err != nil {
		return nil
	}

	liked, err := s.caseService.LikeCase(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"case": liked})
}

// ViewCase increments the page-view counter and returns the refreshed case (public)
func (s *Server) ViewCase(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseID(c)
	if err != nil {
		return nil
	}

	viewed, err := s.caseService.ViewCase(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"case": viewed})
}
