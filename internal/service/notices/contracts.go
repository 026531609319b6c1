package notices

import (
	"context"

	"github.com/dungeon-app/booking-service/internal/domain"
)

// NoticeRepository is the persistence surface for notices and votes.
type NoticeRepository interface {
	Create(ctx context.Context, n *domain.Notice) (*domain.Notice, error)
	GetByID(ctx context.Context, id int64) (*domain.Notice, error)
	List(ctx context.Context) ([]*domain.Notice, error)
	UpsertVote(ctx context.Context, v *domain.Vote) error
	GetTally(ctx context.Context, noticeID int64) (*domain.VoteTally, error)
}

// UserRepository is the slice of the user repository the notices
// service needs to re-check voter standing.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// AuditRecorder records member and editor actions.
type AuditRecorder interface {
	Record(ctx context.Context, actorID int64, action, entity, entityID, detail string)
}

// Logger is the logging surface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
