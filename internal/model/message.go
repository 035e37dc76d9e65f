package model

import (
	"time"
)

// Role represents the role of a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single turn in a conversation.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Role           Role      `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UpdateMessageRequest is a partial patch for a message. Nil fields are
// left untouched.
type UpdateMessageRequest struct {
	Content *string `json:"content,omitempty"`
}

// ChatRequest is the request body for POST /api/chat. ConversationID is
// optional; when absent a new conversation is created.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
}

// ChatResponse is the response for POST /api/chat.
type ChatResponse struct {
	Message        *Message `json:"message"`
	ConversationID string   `json:"conversationId"`
}
