package journal

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/karmajournal/karma-backend/internal/dto"
	"github.com/karmajournal/karma-backend/internal/middleware"
)

type Handler struct {
	journalService *JournalService
}

func NewHandler(journalService *JournalService) *Handler {
	return &Handler{journalService: journalService}
}

// SaveDay handles PUT /journal/:date - saves the full log for one day.
func (h *Handler) SaveDay(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	day, err := ParseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	var req SaveDayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.journalService.SaveDay(userID, day, req)
	if err != nil {
		if errors.Is(err, ErrUnknownActivity) || errors.Is(err, ErrInvalidMood) || errors.Is(err, ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save journal entry",
		})
	}

	return c.JSON(resp)
}

// GetDay handles GET /journal/:date - returns the stored log, reflection and score.
func (h *Handler) GetDay(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	day, err := ParseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(h.journalService.Day(userID, day))
}

// GetScore handles GET /journal/:date/score - returns the recomputed day score.
func (h *Handler) GetScore(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	day, err := ParseDate(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	resp := h.journalService.Day(userID, day)
	return c.JSON(fiber.Map{"date": resp.Date, "score": resp.Score})
}

// GetStreak handles GET /journal/streak - returns the journaling streak.
func (h *Handler) GetStreak(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	streak, err := h.journalService.GetStreak(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch streak",
		})
	}

	return c.JSON(streakResponse(streak))
}

// GetCalendar handles GET /journal/calendar - lists dates with a saved log.
func (h *Handler) GetCalendar(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	days := c.QueryInt("days", 35)
	dates, err := h.journalService.Calendar(userID, days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load calendar",
		})
	}

	return c.JSON(CalendarResponse{Dates: dates, Days: days})
}
