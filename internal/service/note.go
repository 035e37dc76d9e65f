package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/daybreak-labs/companion-api/internal/model"
	"github.com/daybreak-labs/companion-api/internal/store"
	"github.com/daybreak-labs/companion-api/pkg/logger"
)

// NoteService handles note CRUD, logging one activity per mutation.
type NoteService struct {
	store      store.Store
	activities *ActivityService
	logger     *logger.Logger
}

// NewNoteService creates a new note service.
func NewNoteService(st store.Store, activities *ActivityService, log *logger.Logger) *NoteService {
	return &NoteService{
		store:      st,
		activities: activities,
		logger:     log,
	}
}

// List returns all notes, newest first.
func (s *NoteService) List(ctx context.Context) []model.Note {
	return s.store.ListNotes()
}

// Get retrieves a note by ID.
func (s *NoteService) Get(ctx context.Context, id string) (*model.Note, error) {
	note, ok := s.store.GetNote(id)
	if !ok {
		return nil, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	return note, nil
}

// Create creates a note and logs a note_created activity.
func (s *NoteService) Create(ctx context.Context, req *model.CreateNoteRequest) (*model.Note, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	note := s.store.CreateNote(req)
	s.activities.Append(ctx, model.ActivityNoteCreated, "Created note: "+note.Title)
	return note, nil
}

// Update applies a partial patch to a note and logs a note_updated
// activity.
func (s *NoteService) Update(ctx context.Context, id string, patch *model.UpdateNoteRequest) (*model.Note, error) {
	note, ok := s.store.UpdateNote(id, patch)
	if !ok {
		return nil, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	s.activities.Append(ctx, model.ActivityNoteUpdated, "Updated note: "+note.Title)
	return note, nil
}

// Delete removes a note and logs a note_deleted activity.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	note, ok := s.store.GetNote(id)
	if !ok {
		return fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	if !s.store.DeleteNote(id) {
		return fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	s.activities.Append(ctx, model.ActivityNoteDeleted, "Deleted note: "+note.Title)
	return nil
}
