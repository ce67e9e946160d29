package goals

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a user-defined daily goal with its own completion streak. Goals
// are never auto-deleted.
type Goal struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name              string     `gorm:"size:120;not null" json:"name"`
	Streak            int        `gorm:"default:0" json:"streak"`
	LastCompletedDate *time.Time `json:"last_completed_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// --- DTOs ---

type CreateGoalRequest struct {
	Name string `json:"name"`
}

type GoalResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Streak            int       `json:"streak"`
	LastCompletedDate string    `json:"last_completed_date,omitempty"`
	IsCompletedToday  bool      `json:"is_completed_today"`
	CreatedAt         time.Time `json:"created_at"`
}

type GoalsListResponse struct {
	Goals []GoalResponse `json:"goals"`
	Total int            `json:"total"`
}
