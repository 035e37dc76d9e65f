package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/daybreak-labs/companion-api/internal/model"
)

// Memory is the in-memory Store implementation. A single mutex guards all
// maps, which gives per-call atomicity; state is discarded on process exit.
type Memory struct {
	mu sync.RWMutex

	conversations map[string]*model.Conversation
	messages      map[string]*model.Message
	goals         map[string]*model.Goal
	notes         map[string]*model.Note
	activities    map[string]*model.Activity

	// message ids per conversation, in arrival order
	convMessages map[string][]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		conversations: make(map[string]*model.Conversation),
		messages:      make(map[string]*model.Message),
		goals:         make(map[string]*model.Goal),
		notes:         make(map[string]*model.Note),
		activities:    make(map[string]*model.Activity),
		convMessages:  make(map[string][]string),
	}
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// ListConversations returns all conversations, most recently updated first.
func (m *Memory) ListConversations() []model.Conversation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	convs := make([]model.Conversation, 0, len(m.conversations))
	for _, c := range m.conversations {
		convs = append(convs, *c)
	}
	sort.Slice(convs, func(i, j int) bool {
		return convs[i].UpdatedAt.After(convs[j].UpdatedAt)
	})
	return convs
}

// GetConversation retrieves a conversation by ID.
func (m *Memory) GetConversation(id string) (*model.Conversation, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.conversations[id]
	if !ok {
		return nil, false
	}
	cp := *c
	return &cp, true
}

// CreateConversation creates a new conversation with the given title.
func (m *Memory) CreateConversation(title string) *model.Conversation {
	now := time.Now()
	c := &model.Conversation{
		ID:        newID(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.conversations[c.ID] = c
	m.mu.Unlock()

	cp := *c
	return &cp
}

// UpdateConversation merges a partial patch and refreshes UpdatedAt.
func (m *Memory) UpdateConversation(id string, patch *model.UpdateConversationRequest) (*model.Conversation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.conversations[id]
	if !ok {
		return nil, false
	}
	if patch != nil && patch.Title != nil {
		c.Title = *patch.Title
	}
	c.UpdatedAt = time.Now()

	cp := *c
	return &cp, true
}

// DeleteConversation removes a conversation and its messages.
func (m *Memory) DeleteConversation(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.conversations[id]; !ok {
		return false
	}
	delete(m.conversations, id)
	for _, msgID := range m.convMessages[id] {
		delete(m.messages, msgID)
	}
	delete(m.convMessages, id)
	return true
}

// ListMessages returns the messages of one conversation, oldest first.
func (m *Memory) ListMessages(conversationID string) []model.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := m.convMessages[conversationID]
	msgs := make([]model.Message, 0, len(ids))
	for _, id := range ids {
		if msg, ok := m.messages[id]; ok {
			msgs = append(msgs, *msg)
		}
	}
	return msgs
}

// GetMessage retrieves a message by ID.
func (m *Memory) GetMessage(id string) (*model.Message, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	msg, ok := m.messages[id]
	if !ok {
		return nil, false
	}
	cp := *msg
	return &cp, true
}

// CreateMessage appends a message to a conversation.
func (m *Memory) CreateMessage(conversationID string, role model.Role, content string) *model.Message {
	msg := &model.Message{
		ID:             newID(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		CreatedAt:      time.Now(),
	}

	m.mu.Lock()
	m.messages[msg.ID] = msg
	m.convMessages[conversationID] = append(m.convMessages[conversationID], msg.ID)
	m.mu.Unlock()

	cp := *msg
	return &cp
}

// UpdateMessage merges a partial patch over a stored message.
func (m *Memory) UpdateMessage(id string, patch *model.UpdateMessageRequest) (*model.Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg, ok := m.messages[id]
	if !ok {
		return nil, false
	}
	if patch != nil && patch.Content != nil {
		msg.Content = *patch.Content
	}

	cp := *msg
	return &cp, true
}

// DeleteMessage removes a message by ID.
func (m *Memory) DeleteMessage(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg, ok := m.messages[id]
	if !ok {
		return false
	}
	delete(m.messages, id)

	ids := m.convMessages[msg.ConversationID]
	for i, msgID := range ids {
		if msgID == id {
			m.convMessages[msg.ConversationID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return true
}

// ListGoals returns all goals, newest first.
func (m *Memory) ListGoals() []model.Goal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	goals := make([]model.Goal, 0, len(m.goals))
	for _, g := range m.goals {
		goals = append(goals, *g)
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	return goals
}

// GetGoal retrieves a goal by ID.
func (m *Memory) GetGoal(id string) (*model.Goal, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.goals[id]
	if !ok {
		return nil, false
	}
	cp := *g
	return &cp, true
}

// CreateGoal creates a new goal. Progress starts at 0 and Completed at
// false regardless of input.
func (m *Memory) CreateGoal(req *model.CreateGoalRequest) *model.Goal {
	now := time.Now()
	g := &model.Goal{
		ID:          newID(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Progress:    0,
		TargetDate:  req.TargetDate,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	m.mu.Lock()
	m.goals[g.ID] = g
	m.mu.Unlock()

	cp := *g
	return &cp
}

// UpdateGoal merges a partial patch and refreshes UpdatedAt.
func (m *Memory) UpdateGoal(id string, patch *model.UpdateGoalRequest) (*model.Goal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.goals[id]
	if !ok {
		return nil, false
	}
	if patch != nil {
		if patch.Title != nil {
			g.Title = *patch.Title
		}
		if patch.Description != nil {
			g.Description = *patch.Description
		}
		if patch.Category != nil {
			g.Category = *patch.Category
		}
		if patch.Progress != nil {
			g.Progress = *patch.Progress
		}
		if patch.TargetDate != nil {
			g.TargetDate = *patch.TargetDate
		}
		if patch.Completed != nil {
			g.Completed = *patch.Completed
		}
	}
	g.UpdatedAt = time.Now()

	cp := *g
	return &cp, true
}

// DeleteGoal removes a goal by ID.
func (m *Memory) DeleteGoal(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.goals[id]; !ok {
		return false
	}
	delete(m.goals, id)
	return true
}

// ListNotes returns all notes, newest first.
func (m *Memory) ListNotes() []model.Note {
	m.mu.RLock()
	defer m.mu.RUnlock()

	notes := make([]model.Note, 0, len(m.notes))
	for _, n := range m.notes {
		cp := *n
		cp.Tags = copyTags(n.Tags)
		notes = append(notes, cp)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes
}

// GetNote retrieves a note by ID.
func (m *Memory) GetNote(id string) (*model.Note, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, ok := m.notes[id]
	if !ok {
		return nil, false
	}
	cp := *n
	cp.Tags = copyTags(n.Tags)
	return &cp, true
}

// CreateNote creates a new note. Tags default to an empty list.
func (m *Memory) CreateNote(req *model.CreateNoteRequest) *model.Note {
	now := time.Now()
	n := &model.Note{
		ID:        newID(),
		Title:     req.Title,
		Content:   req.Content,
		Tags:      copyTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.notes[n.ID] = n
	m.mu.Unlock()

	cp := *n
	cp.Tags = copyTags(n.Tags)
	return &cp
}

// UpdateNote merges a partial patch and refreshes UpdatedAt.
func (m *Memory) UpdateNote(id string, patch *model.UpdateNoteRequest) (*model.Note, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[id]
	if !ok {
		return nil, false
	}
	if patch != nil {
		if patch.Title != nil {
			n.Title = *patch.Title
		}
		if patch.Content != nil {
			n.Content = *patch.Content
		}
		if patch.Tags != nil {
			n.Tags = copyTags(*patch.Tags)
		}
	}
	n.UpdatedAt = time.Now()

	cp := *n
	cp.Tags = copyTags(n.Tags)
	return &cp, true
}

// DeleteNote removes a note by ID.
func (m *Memory) DeleteNote(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notes[id]; !ok {
		return false
	}
	delete(m.notes, id)
	return true
}

// ListActivities returns all activity entries, newest first.
func (m *Memory) ListActivities() []model.Activity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	acts := make([]model.Activity, 0, len(m.activities))
	for _, a := range m.activities {
		acts = append(acts, *a)
	}
	sort.Slice(acts, func(i, j int) bool {
		return acts[i].CreatedAt.After(acts[j].CreatedAt)
	})
	return acts
}

// GetActivity retrieves an activity entry by ID.
func (m *Memory) GetActivity(id string) (*model.Activity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.activities[id]
	if !ok {
		return nil, false
	}
	cp := *a
	return &cp, true
}

// CreateActivity appends an immutable activity entry.
func (m *Memory) CreateActivity(activityType, description string) *model.Activity {
	a := &model.Activity{
		ID:          newID(),
		Type:        activityType,
		Description: description,
		CreatedAt:   time.Now(),
	}

	m.mu.Lock()
	m.activities[a.ID] = a
	m.mu.Unlock()

	cp := *a
	return &cp
}
