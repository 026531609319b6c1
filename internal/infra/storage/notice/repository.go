package notice

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dungeon-app/booking-service/internal/domain"
	"github.com/dungeon-app/booking-service/pkg/dbmetrics"
	"github.com/dungeon-app/booking-service/pkg/psqlbuilder"
)

const noticeColumns = "id, title, body, author_id, open_for_voting, created_at, updated_at"

// Repository persists notices and their votes.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a notice repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new notice.
func (r *Repository) Create(ctx context.Context, n *domain.Notice) (*domain.Notice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notices").
		Columns("title", "body", "author_id", "open_for_voting").
		Values(n.Title, n.Body, n.AuthorID, n.OpenForVoting).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.CreatedAt = createdAt.Time
	n.UpdatedAt = updatedAt.Time

	return n, nil
}

// GetByID fetches a notice by ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Notice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(noticeColumns).
		From("notices").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		n                    domain.Notice
		createdAt, updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&n.ID, &n.Title, &n.Body, &n.AuthorID, &n.OpenForVoting, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNoticeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan notice: %v", ErrScanRow, err)
	}

	n.CreatedAt = createdAt.Time
	n.UpdatedAt = updatedAt.Time

	return &n, nil
}

// List fetches notices, newest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Notice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(noticeColumns).
		From("notices").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notices := make([]*domain.Notice, 0)
	for rows.Next() {
		var (
			n                    domain.Notice
			createdAt, updatedAt sql.NullTime
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.AuthorID, &n.OpenForVoting, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		n.CreatedAt = createdAt.Time
		n.UpdatedAt = updatedAt.Time
		notices = append(notices, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return notices, nil
}

// UpsertVote records a member's vote on a notice, replacing any
// previous choice. One vote per member per notice.
func (r *Repository) UpsertVote(ctx context.Context, v *domain.Vote) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notice_votes").
		Columns("notice_id", "user_id", "choice").
		Values(v.NoticeID, v.UserID, v.Choice).
		Suffix("ON CONFLICT (notice_id, user_id) DO UPDATE SET choice = EXCLUDED.choice, created_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertVote - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertVote - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetTally aggregates the votes on a notice.
func (r *Repository) GetTally(ctx context.Context, noticeID int64) (*domain.VoteTally, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("choice", "COUNT(*)").
		From("notice_votes").
		Where(squirrel.Eq{"notice_id": noticeID}).
		GroupBy("choice").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTally - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTally - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tally := &domain.VoteTally{NoticeID: noticeID}
	for rows.Next() {
		var (
			choice domain.VoteChoice
			count  int
		)
		if err := rows.Scan(&choice, &count); err != nil {
			return nil, fmt.Errorf("%w: GetTally - scan row: %v", ErrScanRow, err)
		}
		switch choice {
		case domain.VoteFor:
			tally.For = count
		case domain.VoteAgainst:
			tally.Against = count
		case domain.VoteAbstain:
			tally.Abstain = count
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTally - rows error: %v", ErrScanRow, err)
	}

	return tally, nil
}
