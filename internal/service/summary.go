package service

import (
	"context"
	"time"

	"github.com/daybreak-labs/companion-api/internal/model"
	"github.com/daybreak-labs/companion-api/internal/store"
	"github.com/daybreak-labs/companion-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// InsightGenerator turns activity counters into short insight strings. It
// never fails; on any provider problem it returns a fixed fallback list.
type InsightGenerator interface {
	GenerateDailyInsights(ctx context.Context, chatCount, goalCount, noteCount int) []string
}

// SummaryService builds the daily summary from today's activity log.
type SummaryService struct {
	store   store.Store
	gateway InsightGenerator
	logger  *logger.Logger
}

// NewSummaryService creates a new summary service.
func NewSummaryService(st store.Store, gw InsightGenerator, log *logger.Logger) *SummaryService {
	return &SummaryService{
		store:   st,
		gateway: gw,
		logger:  log,
	}
}

// Daily counts today's activities by type and attaches generated
// insights. It never fails; insight generation degrades to a fixed list.
func (s *SummaryService) Daily(ctx context.Context) *model.DailySummary {
	today := time.Now().Format(dateLayout)

	summary := &model.DailySummary{Date: today}
	for _, a := range s.store.ListActivities() {
		if a.CreatedAt.Format(dateLayout) != today {
			continue
		}
		switch a.Type {
		case model.ActivityChat:
			summary.TotalChats++
		case model.ActivityGoalCompleted:
			summary.GoalsCompleted++
		case model.ActivityNoteCreated:
			summary.NotesCreated++
		}
	}

	summary.Insights = s.gateway.GenerateDailyInsights(ctx,
		summary.TotalChats, summary.GoalsCompleted, summary.NotesCreated)
	return summary
}
