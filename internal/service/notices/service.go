package notices

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dungeon-app/booking-service/internal/domain"
	noticeRepo "github.com/dungeon-app/booking-service/internal/infra/storage/notice"
	userRepo "github.com/dungeon-app/booking-service/internal/infra/storage/user"
	"github.com/dungeon-app/booking-service/internal/service/notices/models"
)

// Service manages the notice board and its voting. Publishing is
// restricted to editors and administrators at the router; voting
// standing is re-checked here because membership status may have
// changed since the session token was issued.
type Service struct {
	noticeRepo NoticeRepository
	userRepo   UserRepository
	audit      AuditRecorder
	logger     Logger
}

// NewService creates a notices service.
func NewService(noticeRepo NoticeRepository, userRepo UserRepository, audit AuditRecorder, logger Logger) *Service {
	return &Service{
		noticeRepo: noticeRepo,
		userRepo:   userRepo,
		audit:      audit,
		logger:     logger,
	}
}

// Create publishes a notice.
func (s *Service) Create(ctx context.Context, req *models.CreateNoticeRequest) (*models.NoticeResponse, error) {
	s.logger.Info("Create: notice %q by author=%d", req.Title, req.AuthorID)

	if err := validateNotice(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	notice := &domain.Notice{
		Title:         req.Title,
		Body:          req.Body,
		AuthorID:      req.AuthorID,
		OpenForVoting: req.OpenForVoting,
	}

	created, err := s.noticeRepo.Create(ctx, notice)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, req.AuthorID, "notice.create", "notice", strconv.FormatInt(created.ID, 10), created.Title)

	s.logger.Info("Create: notice id=%d published", created.ID)
	return models.FromDomainNotice(created), nil
}

// List fetches the notice board, newest first.
func (s *Service) List(ctx context.Context) (*models.NoticeListResponse, error) {
	notices, err := s.noticeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainNoticeList(notices), nil
}

// CastVote records a member's vote on a notice open for voting.
// Re-voting replaces the previous choice.
func (s *Service) CastVote(ctx context.Context, req *models.CastVoteRequest) error {
	s.logger.Info("CastVote: notice id=%d by user=%d", req.NoticeID, req.UserID)

	choice, err := models.ToDomainVoteChoice(req.Choice)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	notice, err := s.noticeRepo.GetByID(ctx, req.NoticeID)
	if err != nil {
		if errors.Is(err, noticeRepo.ErrNoticeNotFound) {
			return ErrNoticeNotFound
		}
		s.logger.Error("CastVote: repository error for notice id=%d: %v", req.NoticeID, err)
		return fmt.Errorf("%w: CastVote - repository error: %v", ErrInternal, err)
	}

	if !notice.OpenForVoting {
		s.logger.Warn("CastVote: notice id=%d is not open for voting", req.NoticeID)
		return ErrVotingClosed
	}

	// Authoritative status check, not the one cached in the token.
	voter, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrVoterNotActive
		}
		s.logger.Error("CastVote: voter lookup failed for user=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: CastVote - voter lookup: %v", ErrInternal, err)
	}
	if voter.Status != domain.UserActive {
		s.logger.Warn("CastVote: user=%d status=%s cannot vote", req.UserID, voter.Status)
		return ErrVoterNotActive
	}

	vote := &domain.Vote{
		NoticeID: req.NoticeID,
		UserID:   req.UserID,
		Choice:   choice,
	}

	if err := s.noticeRepo.UpsertVote(ctx, vote); err != nil {
		s.logger.Error("CastVote: repository error for notice id=%d: %v", req.NoticeID, err)
		return fmt.Errorf("%w: CastVote - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, req.UserID, "notice.vote", "notice", strconv.FormatInt(req.NoticeID, 10), string(choice))
	return nil
}

// GetTally aggregates the votes of a notice.
func (s *Service) GetTally(ctx context.Context, noticeID int64) (*models.TallyResponse, error) {
	if _, err := s.noticeRepo.GetByID(ctx, noticeID); err != nil {
		if errors.Is(err, noticeRepo.ErrNoticeNotFound) {
			return nil, ErrNoticeNotFound
		}
		s.logger.Error("GetTally: repository error for notice id=%d: %v", noticeID, err)
		return nil, fmt.Errorf("%w: GetTally - repository error: %v", ErrInternal, err)
	}

	tally, err := s.noticeRepo.GetTally(ctx, noticeID)
	if err != nil {
		s.logger.Error("GetTally: repository error for notice id=%d: %v", noticeID, err)
		return nil, fmt.Errorf("%w: GetTally - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTally(tally), nil
}

func validateNotice(req *models.CreateNoticeRequest) error {
	if req.Title == "" || len(req.Title) > domain.MaxNoticeTitleLength {
		return fmt.Errorf("%w: title must be 1-%d characters", ErrInvalidInput, domain.MaxNoticeTitleLength)
	}
	if req.Body == "" || len(req.Body) > domain.MaxNoticeBodyLength {
		return fmt.Errorf("%w: body must be 1-%d characters", ErrInvalidInput, domain.MaxNoticeBodyLength)
	}
	return nil
}
