package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/visualpath/visualpath-api/internal/api/dto"
	"github.com/visualpath/visualpath-api/internal/repository"
	apperrors "github.com/visualpath/visualpath-api/pkg/util"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Envelope{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func respondPage(c *fiber.Ctx, message string, data any, meta dto.PageMeta) error {
	return c.Status(fiber.StatusOK).JSON(dto.Envelope{
		Status:  fiber.StatusOK,
		Message: message,
		Data:    data,
		Meta:    &meta,
	})
}

func pageMeta[T any](page repository.Page[T]) dto.PageMeta {
	return dto.PageMeta{
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}

// parsePagination reads page/limit query params, falling back to defaults
// for missing or nonsensical values.
func parsePagination(c *fiber.Ctx) (int, int) {
	page := parsePositiveInt(c.Query("page"), defaultPage)
	limit := parsePositiveInt(c.Query("limit"), defaultLimit)
	return page, limit
}

func parsePositiveInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 1 {
		return def
	}
	return parsed
}

// pathID validates the :id path parameter as a UUID before any lookup.
func pathID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.NewValidationError("invalid identifier", map[string]any{"id": "must be a valid UUID"})
	}
	return id, nil
}

// optionalQuery returns a pointer to a non-empty query param.
func optionalQuery(c *fiber.Ctx, key string) *string {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	return &val
}
