package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/daybreak-labs/companion-api/internal/events"
	"github.com/daybreak-labs/companion-api/internal/model"
	"github.com/daybreak-labs/companion-api/internal/store"
	"github.com/daybreak-labs/companion-api/pkg/logger"
	"github.com/daybreak-labs/companion-api/pkg/metrics"
)

// ActivityService appends to and reads the append-only activity log.
type ActivityService struct {
	store     store.Store
	publisher events.Publisher
	logger    *logger.Logger
}

// NewActivityService creates a new activity service.
func NewActivityService(st store.Store, pub events.Publisher, log *logger.Logger) *ActivityService {
	return &ActivityService{
		store:     st,
		publisher: pub,
		logger:    log,
	}
}

// List returns all activity entries, newest first.
func (s *ActivityService) List(ctx context.Context) []model.Activity {
	return s.store.ListActivities()
}

// Append records an activity entry and fans it out to the event
// publisher. Publish failures are logged and swallowed; the log entry in
// the store is the source of truth.
func (s *ActivityService) Append(ctx context.Context, activityType, description string) *model.Activity {
	activity := s.store.CreateActivity(activityType, description)
	metrics.ActivitiesTotal.WithLabelValues(activityType).Inc()

	if err := s.publisher.PublishActivity(ctx, activity); err != nil {
		s.logger.Warn("failed to publish activity event",
			zap.String("activity_type", activityType),
			zap.Error(err),
		)
	}
	return activity
}

// AppendManual records a caller-supplied activity entry after validating
// the required fields.
func (s *ActivityService) AppendManual(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error) {
	if strings.TrimSpace(req.Type) == "" {
		return nil, fmt.Errorf("%w: type is required", ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	return s.Append(ctx, req.Type, req.Description), nil
}
