package domain

import "time"

// AuditEvent is an append-only record of an administrative or member
// action. Events are never updated or deleted.
type AuditEvent struct {
	ID       string // uuid
	ActorID  int64
	Action   string // e.g. "booking.create", "user.status.update"
	Entity   string // e.g. "booking", "room", "user"
	EntityID string
	Detail   string

	CreatedAt time.Time
}

// AuditFilter narrows audit listings.
type AuditFilter struct {
	ActorID *int64
	Entity  *string
	Action  *string
	Since   *time.Time
	Until   *time.Time
	Limit   int // 0 = repository default
}
