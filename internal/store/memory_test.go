package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreak-labs/companion-api/internal/model"
)

func TestCreateThenGetRoundTrip(t *testing.T) {
	m := NewMemory()

	conv := m.CreateConversation("morning check-in")
	got, ok := m.GetConversation(conv.ID)
	require.True(t, ok)
	assert.Equal(t, conv, got)

	goal := m.CreateGoal(&model.CreateGoalRequest{Title: "Run 5k", Category: "health"})
	gotGoal, ok := m.GetGoal(goal.ID)
	require.True(t, ok)
	assert.Equal(t, goal, gotGoal)

	note := m.CreateNote(&model.CreateNoteRequest{Title: "Ideas", Content: "ship it"})
	gotNote, ok := m.GetNote(note.ID)
	require.True(t, ok)
	assert.Equal(t, note, gotNote)

	act := m.CreateActivity("chat", "Chatted: \"hello\"")
	gotAct, ok := m.GetActivity(act.ID)
	require.True(t, ok)
	assert.Equal(t, act, gotAct)
}

func TestCreateDefaults(t *testing.T) {
	m := NewMemory()

	goal := m.CreateGoal(&model.CreateGoalRequest{Title: "Learn X", Category: "learning"})
	assert.Equal(t, 0, goal.Progress)
	assert.False(t, goal.Completed)
	assert.False(t, goal.CreatedAt.IsZero())
	assert.Equal(t, goal.CreatedAt, goal.UpdatedAt)

	note := m.CreateNote(&model.CreateNoteRequest{Title: "Empty", Content: "no tags"})
	require.NotNil(t, note.Tags)
	assert.Empty(t, note.Tags)
}

func TestEmptyPatchRefreshesOnlyUpdatedAt(t *testing.T) {
	m := NewMemory()

	goal := m.CreateGoal(&model.CreateGoalRequest{
		Title:       "Read more",
		Description: "a chapter a night",
		Category:    "learning",
	})

	updated, ok := m.UpdateGoal(goal.ID, &model.UpdateGoalRequest{})
	require.True(t, ok)

	assert.Equal(t, goal.ID, updated.ID)
	assert.Equal(t, goal.Title, updated.Title)
	assert.Equal(t, goal.Description, updated.Description)
	assert.Equal(t, goal.Category, updated.Category)
	assert.Equal(t, goal.Progress, updated.Progress)
	assert.Equal(t, goal.Completed, updated.Completed)
	assert.Equal(t, goal.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(goal.UpdatedAt))
}

func TestPartialPatchLeavesOtherFields(t *testing.T) {
	m := NewMemory()

	note := m.CreateNote(&model.CreateNoteRequest{
		Title:   "Groceries",
		Content: "milk, eggs",
		Tags:    []string{"home"},
	})

	content := "milk, eggs, coffee"
	updated, ok := m.UpdateNote(note.ID, &model.UpdateNoteRequest{Content: &content})
	require.True(t, ok)
	assert.Equal(t, "Groceries", updated.Title)
	assert.Equal(t, content, updated.Content)
	assert.Equal(t, []string{"home"}, updated.Tags)
}

func TestDeleteIsIdempotent(t *testing.T) {
	m := NewMemory()

	assert.False(t, m.DeleteGoal("missing"))
	assert.False(t, m.DeleteGoal("missing"))

	goal := m.CreateGoal(&model.CreateGoalRequest{Title: "t", Category: "c"})
	assert.True(t, m.DeleteGoal(goal.ID))
	assert.False(t, m.DeleteGoal(goal.ID))
}

func TestUpdateUnknownIDReportsMissing(t *testing.T) {
	m := NewMemory()

	_, ok := m.UpdateGoal("missing", &model.UpdateGoalRequest{})
	assert.False(t, ok)
	_, ok = m.UpdateNote("missing", &model.UpdateNoteRequest{})
	assert.False(t, ok)
	_, ok = m.UpdateConversation("missing", nil)
	assert.False(t, ok)
}

func TestMessageOrderAcrossInterleavedConversations(t *testing.T) {
	m := NewMemory()

	a := m.CreateConversation("a")
	b := m.CreateConversation("b")

	m.CreateMessage(a.ID, model.RoleUser, "a1")
	m.CreateMessage(b.ID, model.RoleUser, "b1")
	m.CreateMessage(a.ID, model.RoleAssistant, "a2")
	m.CreateMessage(b.ID, model.RoleAssistant, "b2")
	m.CreateMessage(a.ID, model.RoleUser, "a3")

	msgs := m.ListMessages(a.ID)
	require.Len(t, msgs, 3)
	assert.Equal(t, []string{"a1", "a2", "a3"}, []string{msgs[0].Content, msgs[1].Content, msgs[2].Content})
	for i := 1; i < len(msgs); i++ {
		assert.False(t, msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt))
	}
}

func TestListConversationsNewestUpdatedFirst(t *testing.T) {
	m := NewMemory()

	first := m.CreateConversation("first")
	m.CreateConversation("second")

	// touching the first conversation moves it to the front
	_, ok := m.UpdateConversation(first.ID, nil)
	require.True(t, ok)

	convs := m.ListConversations()
	require.Len(t, convs, 2)
	assert.Equal(t, first.ID, convs[0].ID)
}

func TestDeleteConversationRemovesMessages(t *testing.T) {
	m := NewMemory()

	conv := m.CreateConversation("doomed")
	msg := m.CreateMessage(conv.ID, model.RoleUser, "hello")

	require.True(t, m.DeleteConversation(conv.ID))
	_, ok := m.GetMessage(msg.ID)
	assert.False(t, ok)
	assert.Empty(t, m.ListMessages(conv.ID))
}

func TestReturnedEntitiesAreCopies(t *testing.T) {
	m := NewMemory()

	note := m.CreateNote(&model.CreateNoteRequest{Title: "n", Content: "c", Tags: []string{"x"}})
	note.Tags[0] = "mutated"
	note.Title = "mutated"

	stored, ok := m.GetNote(note.ID)
	require.True(t, ok)
	assert.Equal(t, "n", stored.Title)
	assert.Equal(t, []string{"x"}, stored.Tags)
}
