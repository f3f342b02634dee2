package service

import (
	"context"
	"fmt"

	"mining-map-api/internal/events"
	"mining-map-api/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultActivityLimit is the page size of activity reads.
	DefaultActivityLimit = 100
	maxActivityLimit     = 1000
)

// ActivityRepository stores audit entries.
type ActivityRepository interface {
	CreateActivity(ctx context.Context, a *models.ActivityLog) error
	ListActivity(ctx context.Context, limit int) ([]models.ActivityLog, error)
}

// ActivityService records the audit trail and mirrors it to the event stream.
type ActivityService struct {
	repo      ActivityRepository
	publisher events.Publisher
}

// NewActivityService creates an activity service. A nil publisher disables
// streaming.
func NewActivityService(repo ActivityRepository, publisher events.Publisher) *ActivityService {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &ActivityService{repo: repo, publisher: publisher}
}

// Log stores an entry, then publishes it. Publishing failures are only logged.
func (s *ActivityService) Log(ctx context.Context, in models.NewActivity) (*models.ActivityLog, error) {
	entry := &models.ActivityLog{
		ID:       uuid.NewString(),
		UserID:   in.UserID,
		Username: in.Username,
		Action:   in.Action,
		Details:  in.Details,
	}

	if err := s.repo.CreateActivity(ctx, entry); err != nil {
		return nil, fmt.Errorf("service: failed to log activity: %w", err)
	}

	if err := s.publisher.PublishActivity(ctx, *entry); err != nil {
		log.Warn().Err(err).Str("activity_id", entry.ID).Msg("failed to publish activity")
	}

	return entry, nil
}

// List returns the newest entries. Non-positive limits use the default and
// large ones are capped.
func (s *ActivityService) List(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	switch {
	case limit <= 0:
		limit = DefaultActivityLimit
	case limit > maxActivityLimit:
		limit = maxActivityLimit
	}

	logs, err := s.repo.ListActivity(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list activity: %w", err)
	}
	return logs, nil
}
