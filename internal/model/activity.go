package model

import (
	"time"
)

// Activity types emitted by the orchestration layer.
const (
	ActivityChat          = "chat"
	ActivityGoalCreated   = "goal_created"
	ActivityGoalUpdated   = "goal_updated"
	ActivityGoalCompleted = "goal_completed"
	ActivityGoalDeleted   = "goal_deleted"
	ActivityNoteCreated   = "note_created"
	ActivityNoteUpdated   = "note_updated"
	ActivityNoteDeleted   = "note_deleted"
)

// Activity is an append-only log entry describing a user-visible action.
// Activities are immutable once created.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateActivityRequest is the request to append a manual log entry.
type CreateActivityRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}
