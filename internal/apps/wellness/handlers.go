package wellness

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/karmajournal/karma-backend/internal/apps/journal"
	"github.com/karmajournal/karma-backend/internal/dto"
	"github.com/karmajournal/karma-backend/internal/middleware"
	"github.com/karmajournal/karma-backend/internal/storage"
)

type Handler struct {
	wellnessService *WellnessService
}

func NewHandler(wellnessService *WellnessService) *Handler {
	return &Handler{wellnessService: wellnessService}
}

// GetDay handles GET /wellness/:date - returns the day's chemical scores.
func (h *Handler) GetDay(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	day, err := journal.ParseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(h.wellnessService.Day(userID, day))
}

// GetWeekly handles GET /wellness/weekly - returns the trailing 7-day trend.
func (h *Handler) GetWeekly(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	endDate := time.Now().UTC()
	if end := c.Query("end"); end != "" {
		parsed, err := time.Parse(storage.DateLayout, end)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid end date, expected YYYY-MM-DD",
			})
		}
		endDate = parsed
	}

	return c.JSON(h.wellnessService.Weekly(userID, endDate))
}
