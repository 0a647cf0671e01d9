package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/fadilmartias/feedback-service/internal/apperror"
	"github.com/fadilmartias/feedback-service/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.NewValidationError("id", "must be a valid UUID")
	}
	return id, nil
}

func queryUUID(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.NewValidationError(name, "must be a valid UUID")
	}
	return &id, nil
}

func queryInt(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperror.NewValidationError(name, "must be an integer")
	}
	return &n, nil
}

func queryTime(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperror.NewValidationError(name, "must be an RFC3339 timestamp")
	}
	return &t, nil
}

// queryTags splits the comma-separated tags parameter and canonicalizes
// each entry the same way stored tags are, so filter matching is exact.
func queryTags(c *fiber.Ctx) []string {
	raw := c.Query("tags")
	if raw == "" {
		return nil
	}
	return dto.NormalizeTagList(strings.Split(raw, ","))
}
