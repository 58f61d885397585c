package server

import (
	"errors"

	"caseboard/internal/models"
	"caseboard/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that parseID already wrote the error response.
var errResponseWritten = errors.New("response already written")

// parseID extracts the :id route param as a positive uint. On failure it
// writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid case ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondServiceError maps service-layer errors onto HTTP statuses.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation:
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case models.CodeNotFound:
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
	}
	observability.RecordErrorInContext(c.UserContext(), err)
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}

// asString coerces a JSON value into a string. Non-strings (including
// null, numbers and booleans) become the empty string, which matches how
// absent-but-present falsy fields are treated on partial updates.
func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// asStringSlice coerces a JSON array into a string slice, skipping
// non-string elements. Any other value yields an empty slice.
func asStringSlice(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
