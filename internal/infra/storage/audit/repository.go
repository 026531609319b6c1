package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dungeon-app/booking-service/internal/domain"
	"github.com/dungeon-app/booking-service/pkg/dbmetrics"
	"github.com/dungeon-app/booking-service/pkg/psqlbuilder"
)

const auditColumns = "id, actor_id, action, entity, entity_id, detail, created_at"

const defaultListLimit = 100

// Repository persists the append-only audit log. Events are never
// updated or deleted.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an audit repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append inserts an audit event.
func (r *Repository) Append(ctx context.Context, ev *domain.AuditEvent) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("audit_events").
		Columns("id", "actor_id", "action", "entity", "entity_id", "detail").
		Values(ev.ID, ev.ActorID, ev.Action, ev.Entity, ev.EntityID, ev.Detail).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// List fetches audit events matching the filter, newest first.
func (r *Repository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(auditColumns).
		From("audit_events").
		OrderBy("created_at DESC")

	if filter.ActorID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"actor_id": *filter.ActorID})
	}
	if filter.Entity != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"entity": *filter.Entity})
	}
	if filter.Action != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"action": *filter.Action})
	}
	if filter.Since != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"created_at": *filter.Since})
	}
	if filter.Until != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"created_at": *filter.Until})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	selectBuilder = selectBuilder.Limit(uint64(limit))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.AuditEvent, 0)
	for rows.Next() {
		var (
			ev        domain.AuditEvent
			createdAt sql.NullTime
		)
		if err := rows.Scan(&ev.ID, &ev.ActorID, &ev.Action, &ev.Entity, &ev.EntityID, &ev.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		ev.CreatedAt = createdAt.Time
		events = append(events, &ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}
