// Package store is the source of truth for entity state during process
// lifetime.
//
// Contract shared by every entity type:
//
//   - List returns all current entities in a fixed order: conversations by
//     UpdatedAt descending, activities/goals/notes by CreatedAt descending,
//     messages by CreatedAt ascending within their conversation.
//   - Get signals absence with a false second return, never an error.
//   - Create assigns a fresh id, stamps timestamps, applies declared
//     defaults and always succeeds on structurally valid input.
//   - Update merges the non-nil fields of a partial patch over the stored
//     entity, preserves the id, refreshes UpdatedAt, and reports false when
//     the id is unknown. An empty patch still refreshes UpdatedAt.
//   - Delete removes by id and reports whether a record existed; deleting
//     twice is not an error, the second call just reports false.
//
// Activities are append-only and carry no update or delete operation.
//
// Each call is atomic with respect to every other call, but there is no
// cross-entity transaction: a message insert and the conversation touch
// that follows it are two independent operations.
package store

import (
	"github.com/daybreak-labs/companion-api/internal/model"
)

// Store holds all entity state. Implementations must satisfy the package
// contract above; the rest of the system depends only on this interface so
// a durable backing store can be substituted later.
type Store interface {
	ListConversations() []model.Conversation
	GetConversation(id string) (*model.Conversation, bool)
	CreateConversation(title string) *model.Conversation
	UpdateConversation(id string, patch *model.UpdateConversationRequest) (*model.Conversation, bool)
	DeleteConversation(id string) bool

	// ListMessages returns the messages of one conversation, oldest first.
	ListMessages(conversationID string) []model.Message
	GetMessage(id string) (*model.Message, bool)
	CreateMessage(conversationID string, role model.Role, content string) *model.Message
	UpdateMessage(id string, patch *model.UpdateMessageRequest) (*model.Message, bool)
	DeleteMessage(id string) bool

	ListGoals() []model.Goal
	GetGoal(id string) (*model.Goal, bool)
	CreateGoal(req *model.CreateGoalRequest) *model.Goal
	UpdateGoal(id string, patch *model.UpdateGoalRequest) (*model.Goal, bool)
	DeleteGoal(id string) bool

	ListNotes() []model.Note
	GetNote(id string) (*model.Note, bool)
	CreateNote(req *model.CreateNoteRequest) *model.Note
	UpdateNote(id string, patch *model.UpdateNoteRequest) (*model.Note, bool)
	DeleteNote(id string) bool

	ListActivities() []model.Activity
	GetActivity(id string) (*model.Activity, bool)
	CreateActivity(activityType, description string) *model.Activity
}
