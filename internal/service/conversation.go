package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/daybreak-labs/companion-api/internal/model"
	"github.com/daybreak-labs/companion-api/internal/store"
	"github.com/daybreak-labs/companion-api/pkg/logger"
)

// ConversationService handles conversation CRUD and message listing.
type ConversationService struct {
	store  store.Store
	logger *logger.Logger
}

// NewConversationService creates a new conversation service.
func NewConversationService(st store.Store, log *logger.Logger) *ConversationService {
	return &ConversationService{
		store:  st,
		logger: log,
	}
}

// List returns all conversations, most recently updated first.
func (s *ConversationService) List(ctx context.Context) []model.Conversation {
	return s.store.ListConversations()
}

// Get retrieves a conversation by ID.
func (s *ConversationService) Get(ctx context.Context, id string) (*model.Conversation, error) {
	conv, ok := s.store.GetConversation(id)
	if !ok {
		return nil, fmt.Errorf("%w: conversation %s", ErrNotFound, id)
	}
	return conv, nil
}

// Create creates a new conversation.
func (s *ConversationService) Create(ctx context.Context, req *model.CreateConversationRequest) (*model.Conversation, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	return s.store.CreateConversation(req.Title), nil
}

// Update applies a partial patch to a conversation.
func (s *ConversationService) Update(ctx context.Context, id string, patch *model.UpdateConversationRequest) (*model.Conversation, error) {
	conv, ok := s.store.UpdateConversation(id, patch)
	if !ok {
		return nil, fmt.Errorf("%w: conversation %s", ErrNotFound, id)
	}
	return conv, nil
}

// Delete removes a conversation and its messages.
func (s *ConversationService) Delete(ctx context.Context, id string) error {
	if !s.store.DeleteConversation(id) {
		return fmt.Errorf("%w: conversation %s", ErrNotFound, id)
	}
	return nil
}

// ListMessages returns a conversation's messages, oldest first.
func (s *ConversationService) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	if _, ok := s.store.GetConversation(conversationID); !ok {
		return nil, fmt.Errorf("%w: conversation %s", ErrNotFound, conversationID)
	}
	return s.store.ListMessages(conversationID), nil
}
