package goals

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karmajournal/karma-backend/internal/storage"
)

var (
	ErrEmptyName    = errors.New("goal name is required")
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

func (s *GoalService) Create(userID uuid.UUID, name string) (*Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	goal := Goal{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return &goal, nil
}

func (s *GoalService) List(userID uuid.UUID, today time.Time) ([]GoalResponse, error) {
	var goals []Goal
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&goals).Error
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	out := make([]GoalResponse, len(goals))
	for i, g := range goals {
		out[i] = goalResponse(&g, today)
	}
	return out, nil
}

// Toggle flips today's completion for a goal. Completing the day after the
// last completion extends the goal streak; completing after a gap restarts
// it at 1. Un-toggling rolls back today's completion.
func (s *GoalService) Toggle(userID, goalID uuid.UUID, today time.Time) (*GoalResponse, error) {
	var goal Goal
	err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load goal: %w", err)
	}

	today = dayOf(today)
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case goal.LastCompletedDate != nil && dayOf(*goal.LastCompletedDate).Equal(today):
		// Un-toggle today's completion.
		goal.Streak--
		if goal.Streak > 0 {
			goal.LastCompletedDate = &yesterday
		} else {
			goal.Streak = 0
			goal.LastCompletedDate = nil
		}
	case goal.LastCompletedDate != nil && dayOf(*goal.LastCompletedDate).Equal(yesterday):
		goal.Streak++
		goal.LastCompletedDate = &today
	default:
		goal.Streak = 1
		goal.LastCompletedDate = &today
	}

	if err := s.db.Save(&goal).Error; err != nil {
		return nil, fmt.Errorf("save goal: %w", err)
	}

	resp := goalResponse(&goal, today)
	return &resp, nil
}

func goalResponse(g *Goal, today time.Time) GoalResponse {
	resp := GoalResponse{
		ID:        g.ID,
		Name:      g.Name,
		Streak:    g.Streak,
		CreatedAt: g.CreatedAt,
	}
	if g.LastCompletedDate != nil {
		resp.LastCompletedDate = g.LastCompletedDate.Format(storage.DateLayout)
		resp.IsCompletedToday = dayOf(*g.LastCompletedDate).Equal(dayOf(today))
	}
	return resp
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
