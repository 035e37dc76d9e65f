// Package events fans out activity records to external consumers.
package events

import (
	"context"

	"github.com/daybreak-labs/companion-api/internal/model"
)

// Publisher broadcasts activity records as they are appended. Publishing
// is best-effort; a failed publish never fails the originating request.
type Publisher interface {
	PublishActivity(ctx context.Context, activity *model.Activity) error
	Close()
}

// Noop is the publisher used when no broker is configured.
type Noop struct{}

// PublishActivity discards the activity.
func (Noop) PublishActivity(ctx context.Context, activity *model.Activity) error {
	return nil
}

// Close does nothing.
func (Noop) Close() {}
