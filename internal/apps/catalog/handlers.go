package catalog

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/karmajournal/karma-backend/internal/dto"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListActivities handles GET /activities - returns the full activity catalog.
func (h *Handler) ListActivities(c *fiber.Ctx) error {
	category := c.Query("category")
	all := All()
	if category == "" {
		return c.JSON(fiber.Map{
			"activities": all,
			"categories": Categories(),
		})
	}

	var filtered []Activity
	for _, a := range all {
		if a.Category == category {
			filtered = append(filtered, a)
		}
	}
	return c.JSON(fiber.Map{
		"activities": filtered,
		"categories": Categories(),
	})
}

// GetActivity handles GET /activities/:name - returns one catalog definition.
func (h *Handler) GetActivity(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid activity name",
		})
	}

	activity, ok := Find(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Activity not found",
		})
	}
	return c.JSON(activity)
}
