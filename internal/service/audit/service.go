package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dungeon-app/booking-service/internal/domain"
)

// Service records and lists audit events. Recording failures are logged
// but do not fail the calling operation: the business change has
// already been committed and losing the trail entry is preferable to
// rolling back a member-visible action.
type Service struct {
	repo   AuditRepository
	logger Logger
}

// NewService creates an audit service.
func NewService(repo AuditRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record appends an audit event. Never returns an error to the caller.
func (s *Service) Record(ctx context.Context, actorID int64, action, entity, entityID, detail string) {
	ev := &domain.AuditEvent{
		ID:       uuid.NewString(),
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	}

	if err := s.repo.Append(ctx, ev); err != nil {
		s.logger.Error("Record: failed to append audit event action=%s entity=%s/%s actor=%d: %v",
			action, entity, entityID, actorID, err)
		return
	}

	s.logger.Info("Record: audit event action=%s entity=%s/%s actor=%d", action, entity, entityID, actorID)
}

// List fetches audit events matching the filter.
func (s *Service) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditEvent, error) {
	events, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return events, nil
}
