// Package model defines data structures for the companion API.
package model

import (
	"time"
)

// Conversation represents a chat thread with the assistant.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateConversationRequest is the request to create a new conversation.
type CreateConversationRequest struct {
	Title string `json:"title"`
}

// UpdateConversationRequest is a partial patch for a conversation. Nil
// fields are left untouched.
type UpdateConversationRequest struct {
	Title *string `json:"title,omitempty"`
}
