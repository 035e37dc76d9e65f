package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreak-labs/companion-api/internal/events"
	"github.com/daybreak-labs/companion-api/internal/model"
	"github.com/daybreak-labs/companion-api/internal/store"
	"github.com/daybreak-labs/companion-api/pkg/logger"
)

func newNoteFixture() (*NoteService, *store.Memory) {
	st := store.NewMemory()
	log := logger.NewNop()
	activities := NewActivityService(st, events.Noop{}, log)
	return NewNoteService(st, activities, log), st
}

func TestNoteCreateLogsActivity(t *testing.T) {
	svc, st := newNoteFixture()

	note, err := svc.Create(context.Background(), &model.CreateNoteRequest{
		Title:   "Standup notes",
		Content: "shipped the thing",
	})
	require.NoError(t, err)
	assert.NotNil(t, note.Tags)

	act := latestActivity(t, st)
	assert.Equal(t, model.ActivityNoteCreated, act.Type)
	assert.Contains(t, act.Description, "Standup notes")
}

func TestNoteCreateValidation(t *testing.T) {
	svc, _ := newNoteFixture()

	_, err := svc.Create(context.Background(), &model.CreateNoteRequest{Content: "c"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), &model.CreateNoteRequest{Title: "t"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNoteUpdateAndDeleteActivities(t *testing.T) {
	svc, st := newNoteFixture()
	ctx := context.Background()

	note, err := svc.Create(ctx, &model.CreateNoteRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	tags := []string{"work", "weekly"}
	updated, err := svc.Update(ctx, note.ID, &model.UpdateNoteRequest{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, tags, updated.Tags)
	assert.Equal(t, "c", updated.Content)
	assert.Equal(t, model.ActivityNoteUpdated, latestActivity(t, st).Type)

	require.NoError(t, svc.Delete(ctx, note.ID))
	assert.Equal(t, model.ActivityNoteDeleted, latestActivity(t, st).Type)

	err = svc.Delete(ctx, note.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
