package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreak-labs/companion-api/internal/model"
	"github.com/daybreak-labs/companion-api/internal/store"
	"github.com/daybreak-labs/companion-api/pkg/logger"
)

type fakeInsightGenerator struct {
	insights []string
	gotChats int
	gotGoals int
	gotNotes int
}

func (f *fakeInsightGenerator) GenerateDailyInsights(ctx context.Context, chatCount, goalCount, noteCount int) []string {
	f.gotChats = chatCount
	f.gotGoals = goalCount
	f.gotNotes = noteCount
	return f.insights
}

// activityStore lets tests control the activity log, including timestamps
// the in-memory store would otherwise stamp itself.
type activityStore struct {
	store.Store
	activities []model.Activity
}

func (s *activityStore) ListActivities() []model.Activity {
	return s.activities
}

func TestDailySummaryCountsTodayByType(t *testing.T) {
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	st := &activityStore{activities: []model.Activity{
		{ID: "1", Type: model.ActivityChat, CreatedAt: now},
		{ID: "2", Type: model.ActivityChat, CreatedAt: now},
		{ID: "3", Type: model.ActivityGoalCompleted, CreatedAt: now},
		{ID: "4", Type: model.ActivityNoteCreated, CreatedAt: now},
		{ID: "5", Type: model.ActivityGoalUpdated, CreatedAt: now},
		{ID: "6", Type: model.ActivityChat, CreatedAt: yesterday},
		{ID: "7", Type: model.ActivityGoalCompleted, CreatedAt: yesterday},
	}}

	gw := &fakeInsightGenerator{insights: []string{"nice work", "keep going", "rest up"}}
	svc := NewSummaryService(st, gw, logger.NewNop())

	summary := svc.Daily(context.Background())
	require.NotNil(t, summary)

	assert.Equal(t, now.Format("2006-01-02"), summary.Date)
	assert.Equal(t, 2, summary.TotalChats)
	assert.Equal(t, 1, summary.GoalsCompleted)
	assert.Equal(t, 1, summary.NotesCreated)
	assert.Equal(t, gw.insights, summary.Insights)

	assert.Equal(t, 2, gw.gotChats)
	assert.Equal(t, 1, gw.gotGoals)
	assert.Equal(t, 1, gw.gotNotes)
}

func TestDailySummaryEmptyLog(t *testing.T) {
	gw := &fakeInsightGenerator{insights: []string{"fresh start"}}
	svc := NewSummaryService(store.NewMemory(), gw, logger.NewNop())

	summary := svc.Daily(context.Background())
	assert.Zero(t, summary.TotalChats)
	assert.Zero(t, summary.GoalsCompleted)
	assert.Zero(t, summary.NotesCreated)
	assert.Equal(t, []string{"fresh start"}, summary.Insights)
}
