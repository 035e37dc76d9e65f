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

func newGoalFixture() (*GoalService, *store.Memory) {
	st := store.NewMemory()
	log := logger.NewNop()
	activities := NewActivityService(st, events.Noop{}, log)
	return NewGoalService(st, activities, log), st
}

func latestActivity(t *testing.T, st *store.Memory) model.Activity {
	t.Helper()
	acts := st.ListActivities()
	require.NotEmpty(t, acts)
	return acts[0]
}

func TestGoalCreateLogsActivity(t *testing.T) {
	svc, st := newGoalFixture()

	goal, err := svc.Create(context.Background(), &model.CreateGoalRequest{
		Title:    "Learn X",
		Category: "learning",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, goal.Progress)
	assert.False(t, goal.Completed)

	act := latestActivity(t, st)
	assert.Equal(t, model.ActivityGoalCreated, act.Type)
	assert.Contains(t, act.Description, "Learn X")
}

func TestGoalCreateValidation(t *testing.T) {
	svc, _ := newGoalFixture()

	_, err := svc.Create(context.Background(), &model.CreateGoalRequest{Category: "learning"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), &model.CreateGoalRequest{Title: "t"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGoalCompletionActivityType(t *testing.T) {
	svc, st := newGoalFixture()
	ctx := context.Background()

	goal, err := svc.Create(ctx, &model.CreateGoalRequest{Title: "Learn X", Category: "learning"})
	require.NoError(t, err)

	// a non-completing patch logs goal_updated
	progress := 40
	_, err = svc.Update(ctx, goal.ID, &model.UpdateGoalRequest{Progress: &progress})
	require.NoError(t, err)
	assert.Equal(t, model.ActivityGoalUpdated, latestActivity(t, st).Type)

	// flipping completed false -> true logs goal_completed
	completed := true
	progress = 100
	updated, err := svc.Update(ctx, goal.ID, &model.UpdateGoalRequest{
		Progress:  &progress,
		Completed: &completed,
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, 100, updated.Progress)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	assert.Equal(t, model.ActivityGoalCompleted, latestActivity(t, st).Type)

	// completing an already-completed goal is just an update
	_, err = svc.Update(ctx, goal.ID, &model.UpdateGoalRequest{Completed: &completed})
	require.NoError(t, err)
	assert.Equal(t, model.ActivityGoalUpdated, latestActivity(t, st).Type)
}

func TestGoalProgressClamped(t *testing.T) {
	svc, _ := newGoalFixture()
	ctx := context.Background()

	goal, err := svc.Create(ctx, &model.CreateGoalRequest{Title: "t", Category: "c"})
	require.NoError(t, err)

	over := 150
	updated, err := svc.Update(ctx, goal.ID, &model.UpdateGoalRequest{Progress: &over})
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)

	under := -10
	updated, err = svc.Update(ctx, goal.ID, &model.UpdateGoalRequest{Progress: &under})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Progress)
}

func TestGoalNotFound(t *testing.T) {
	svc, st := newGoalFixture()
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, "missing", &model.UpdateGoalRequest{})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Empty(t, st.ListActivities())
}

func TestGoalDeleteLogsActivity(t *testing.T) {
	svc, st := newGoalFixture()
	ctx := context.Background()

	goal, err := svc.Create(ctx, &model.CreateGoalRequest{Title: "done with this", Category: "misc"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, goal.ID))
	act := latestActivity(t, st)
	assert.Equal(t, model.ActivityGoalDeleted, act.Type)

	_, err = svc.Get(ctx, goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
