package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cryoflow/cryoflow/ent"
	"github.com/cryoflow/cryoflow/ent/activityentry"
	"github.com/cryoflow/cryoflow/ent/predicate"
	"github.com/cryoflow/cryoflow/pkg/models"
)

// ActivityService manages the append-only per-session activity log.
type ActivityService struct {
	client *ent.Client
}

// NewActivityService creates a new ActivityService
func NewActivityService(client *ent.Client) *ActivityService {
	return &ActivityService{client: client}
}

// Append records one activity entry for a session.
func (s *ActivityService) Append(ctx context.Context, sessionID string, a models.Activity) (*ent.ActivityEntry, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if a.Event == "" {
		return nil, NewValidationError("event", "required")
	}
	level := a.Level
	if level == "" {
		level = models.LevelInfo
	}

	create := s.client.ActivityEntry.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetEvent(a.Event).
		SetMessage(a.Message).
		SetLevel(activityentry.Level(level))
	if a.Stage != "" {
		create.SetStage(string(a.Stage))
	}
	if a.JobName != "" {
		create.SetJobName(a.JobName)
	}
	if a.PassNumber > 0 {
		create.SetPassNumber(a.PassNumber)
	}
	if a.Context != nil {
		create.SetContext(a.Context)
	}

	entry, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append activity: %w", err)
	}
	return entry, nil
}

// List returns a session's activity entries, newest first, narrowed by the
// filter. Search matches a substring of event or message.
func (s *ActivityService) List(ctx context.Context, sessionID string, filter models.ActivityFilter) ([]*ent.ActivityEntry, error) {
	preds := []predicate.ActivityEntry{
		activityentry.SessionID(sessionID),
	}
	if filter.Level != "" {
		preds = append(preds, activityentry.LevelEQ(activityentry.Level(filter.Level)))
	}
	if filter.Stage != "" {
		preds = append(preds, activityentry.StageEQ(string(filter.Stage)))
	}
	if filter.Search != "" {
		preds = append(preds, activityentry.Or(
			activityentry.EventContainsFold(filter.Search),
			activityentry.MessageContainsFold(filter.Search),
		))
	}

	query := s.client.ActivityEntry.Query().
		Where(preds...).
		Order(ent.Desc(activityentry.FieldCreatedAt))
	if filter.Offset > 0 {
		query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query.Limit(filter.Limit)
	}

	entries, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity for session %s: %w", sessionID, err)
	}
	return entries, nil
}
