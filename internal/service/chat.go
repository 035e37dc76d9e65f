package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/daybreak-labs/companion-api/internal/llm"
	"github.com/daybreak-labs/companion-api/internal/model"
	"github.com/daybreak-labs/companion-api/internal/store"
	"github.com/daybreak-labs/companion-api/pkg/logger"
	"github.com/daybreak-labs/companion-api/pkg/metrics"
)

const (
	titleMaxRunes   = 50
	excerptMaxRunes = 60
)

// ReplyGenerator produces an assistant reply from the latest message and
// the prior turns of the conversation.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, latestMessage string, priorTurns []llm.ChatMessage) (string, error)
}

// ChatService runs the chat flow: resolve the conversation, persist the
// user turn, generate a reply, persist it, touch the conversation and log
// the activity.
type ChatService struct {
	store      store.Store
	gateway    ReplyGenerator
	activities *ActivityService
	logger     *logger.Logger
}

// NewChatService creates a new chat service.
func NewChatService(st store.Store, gw ReplyGenerator, activities *ActivityService, log *logger.Logger) *ChatService {
	return &ChatService{
		store:      st,
		gateway:    gw,
		activities: activities,
		logger:     log,
	}
}

// Send handles one chat turn. A failure after the user message is
// persisted leaves it in place; there is no rollback.
func (s *ChatService) Send(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	message := req.Message
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	var conv *model.Conversation
	if req.ConversationID == "" {
		conv = s.store.CreateConversation(truncate(message, titleMaxRunes))
	} else {
		existing, ok := s.store.GetConversation(req.ConversationID)
		if !ok {
			return nil, fmt.Errorf("%w: conversation %s", ErrNotFound, req.ConversationID)
		}
		conv = existing
	}

	userMsg := s.store.CreateMessage(conv.ID, model.RoleUser, message)
	metrics.MessagesTotal.WithLabelValues(string(model.RoleUser)).Inc()

	// History for the model: everything before the turn we just wrote,
	// in chronological order.
	history := s.store.ListMessages(conv.ID)
	priorTurns := make([]llm.ChatMessage, 0, len(history))
	for _, msg := range history {
		if msg.ID == userMsg.ID {
			continue
		}
		priorTurns = append(priorTurns, llm.ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	reply, err := s.gateway.GenerateReply(ctx, message, priorTurns)
	if err != nil {
		return nil, err
	}

	assistantMsg := s.store.CreateMessage(conv.ID, model.RoleAssistant, reply)
	metrics.MessagesTotal.WithLabelValues(string(model.RoleAssistant)).Inc()

	s.store.UpdateConversation(conv.ID, nil)

	s.activities.Append(ctx, model.ActivityChat,
		fmt.Sprintf("Chatted: %q", truncate(message, excerptMaxRunes)))

	return &model.ChatResponse{
		Message:        assistantMsg,
		ConversationID: conv.ID,
	}, nil
}

// truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
