package goals

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/karmajournal/karma-backend/internal/dto"
	"github.com/karmajournal/karma-backend/internal/middleware"
)

type Handler struct {
	goalService *GoalService
}

func NewHandler(goalService *GoalService) *Handler {
	return &Handler{goalService: goalService}
}

// CreateGoal handles POST /goals.
func (h *Handler) CreateGoal(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	goal, err := h.goalService.Create(userID, req.Name)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create goal",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

// ListGoals handles GET /goals.
func (h *Handler) ListGoals(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	goals, err := h.goalService.List(userID, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch goals",
		})
	}

	return c.JSON(GoalsListResponse{Goals: goals, Total: len(goals)})
}

// ToggleGoal handles POST /goals/:id/toggle.
func (h *Handler) ToggleGoal(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid goal ID",
		})
	}

	resp, err := h.goalService.Toggle(userID, goalID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Goal not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to toggle goal",
		})
	}

	return c.JSON(resp)
}
