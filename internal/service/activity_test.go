package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreak-labs/companion-api/internal/events"
	"github.com/daybreak-labs/companion-api/internal/model"
	"github.com/daybreak-labs/companion-api/internal/store"
	"github.com/daybreak-labs/companion-api/pkg/logger"
)

type failingPublisher struct {
	calls int
}

func (p *failingPublisher) PublishActivity(ctx context.Context, activity *model.Activity) error {
	p.calls++
	return errors.New("broker down")
}

func (p *failingPublisher) Close() {}

func TestAppendManualValidation(t *testing.T) {
	st := store.NewMemory()
	svc := NewActivityService(st, events.Noop{}, logger.NewNop())
	ctx := context.Background()

	_, err := svc.AppendManual(ctx, &model.CreateActivityRequest{Description: "d"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AppendManual(ctx, &model.CreateActivityRequest{Type: "custom"})
	assert.ErrorIs(t, err, ErrValidation)

	act, err := svc.AppendManual(ctx, &model.CreateActivityRequest{
		Type:        "custom",
		Description: "logged by hand",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom", act.Type)
	assert.Len(t, st.ListActivities(), 1)
}

func TestAppendSurvivesPublishFailure(t *testing.T) {
	st := store.NewMemory()
	pub := &failingPublisher{}
	svc := NewActivityService(st, pub, logger.NewNop())

	act := svc.Append(context.Background(), model.ActivityChat, "Chatted: \"hi\"")
	require.NotNil(t, act)
	assert.Equal(t, 1, pub.calls)

	// the store entry is the source of truth regardless of fan-out
	stored, ok := st.GetActivity(act.ID)
	require.True(t, ok)
	assert.Equal(t, act, stored)
}
