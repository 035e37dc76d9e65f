package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/daybreak-labs/companion-api/internal/model"
	"github.com/daybreak-labs/companion-api/internal/store"
	"github.com/daybreak-labs/companion-api/pkg/logger"
)

// GoalService handles goal CRUD, logging one activity per mutation.
type GoalService struct {
	store      store.Store
	activities *ActivityService
	logger     *logger.Logger
}

// NewGoalService creates a new goal service.
func NewGoalService(st store.Store, activities *ActivityService, log *logger.Logger) *GoalService {
	return &GoalService{
		store:      st,
		activities: activities,
		logger:     log,
	}
}

// List returns all goals, newest first.
func (s *GoalService) List(ctx context.Context) []model.Goal {
	return s.store.ListGoals()
}

// Get retrieves a goal by ID.
func (s *GoalService) Get(ctx context.Context, id string) (*model.Goal, error) {
	goal, ok := s.store.GetGoal(id)
	if !ok {
		return nil, fmt.Errorf("%w: goal %s", ErrNotFound, id)
	}
	return goal, nil
}

// Create creates a goal and logs a goal_created activity.
func (s *GoalService) Create(ctx context.Context, req *model.CreateGoalRequest) (*model.Goal, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}

	goal := s.store.CreateGoal(req)
	s.activities.Append(ctx, model.ActivityGoalCreated, "Created goal: "+goal.Title)
	return goal, nil
}

// Update applies a partial patch to a goal. Completing a goal (completed
// flipping false to true) logs goal_completed; every other change logs
// goal_updated. Progress is clamped to [0,100] before it reaches the
// store.
func (s *GoalService) Update(ctx context.Context, id string, patch *model.UpdateGoalRequest) (*model.Goal, error) {
	prior, ok := s.store.GetGoal(id)
	if !ok {
		return nil, fmt.Errorf("%w: goal %s", ErrNotFound, id)
	}

	if patch.Progress != nil {
		clamped := clampProgress(*patch.Progress)
		patch.Progress = &clamped
	}

	goal, ok := s.store.UpdateGoal(id, patch)
	if !ok {
		return nil, fmt.Errorf("%w: goal %s", ErrNotFound, id)
	}

	if patch.Completed != nil && *patch.Completed && !prior.Completed {
		s.activities.Append(ctx, model.ActivityGoalCompleted, "Completed goal: "+goal.Title)
	} else {
		s.activities.Append(ctx, model.ActivityGoalUpdated, "Updated goal: "+goal.Title)
	}
	return goal, nil
}

// Delete removes a goal and logs a goal_deleted activity.
func (s *GoalService) Delete(ctx context.Context, id string) error {
	goal, ok := s.store.GetGoal(id)
	if !ok {
		return fmt.Errorf("%w: goal %s", ErrNotFound, id)
	}
	if !s.store.DeleteGoal(id) {
		return fmt.Errorf("%w: goal %s", ErrNotFound, id)
	}
	s.activities.Append(ctx, model.ActivityGoalDeleted, "Deleted goal: "+goal.Title)
	return nil
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
