package model

import (
	"time"
)

// Goal represents a personal goal the user is tracking.
type Goal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Progress    int       `json:"progress"`
	TargetDate  string    `json:"targetDate,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateGoalRequest is the request to create a new goal.
type CreateGoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	TargetDate  string `json:"targetDate,omitempty"`
}

// UpdateGoalRequest is a partial patch for a goal. Nil fields are left
// untouched.
type UpdateGoalRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Progress    *int    `json:"progress,omitempty"`
	TargetDate  *string `json:"targetDate,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}
