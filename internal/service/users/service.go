package users

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dungeon-app/booking-service/internal/auth"
	"github.com/dungeon-app/booking-service/internal/domain"
	userRepo "github.com/dungeon-app/booking-service/internal/infra/storage/user"
	"github.com/dungeon-app/booking-service/internal/service/users/models"
)

const minPasswordLength = 8

// Service manages member accounts: registration, login verification and
// administration of roles and membership standing.
type Service struct {
	userRepo UserRepository
	audit    AuditRecorder
	logger   Logger
}

// NewService creates a user service.
func NewService(userRepo UserRepository, audit AuditRecorder, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		audit:    audit,
		logger:   logger,
	}
}

// Register creates a new account. New members start as Pendente until
// an administrator activates them; they carry the Membro role.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	s.logger.Info("Register: email=%s", req.Email)

	if err := validateRegistration(req); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Register: hashing failed: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         domain.RoleMember,
		Category:     req.Category,
		Status:       domain.UserPending,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user id=%d created with status=%s", created.ID, created.Status)
	return models.FromDomainUser(created), nil
}

// Authenticate verifies a login. Blocked accounts are refused even with
// correct credentials; pending accounts may log in but cannot book.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Authenticate: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		s.logger.Warn("Authenticate: bad password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	if user.Status == domain.UserBlocked {
		s.logger.Warn("Authenticate: blocked user id=%d attempted login", user.ID)
		return nil, ErrAccountBlocked
	}

	s.logger.Info("Authenticate: user id=%d logged in", user.ID)
	return user, nil
}

// GetByID fetches a user.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// List fetches all users, optionally filtered by status.
func (s *Service) List(ctx context.Context, status *string) (*models.UserListResponse, error) {
	var domainStatus *domain.UserStatus
	if status != nil {
		st, err := models.ToDomainUserStatus(*status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		domainStatus = &st
	}

	users, err := s.userRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUserList(users), nil
}

// UpdateStatus changes a member's standing (activate, block, reinstate).
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: user id=%d -> status=%s by actor=%d", req.UserID, req.Status, req.ActorID)

	status, err := models.ToDomainUserStatus(req.Status)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.UpdateStatus(ctx, req.UserID, status); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("UpdateStatus: repository error for user id=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, req.ActorID, "user.status.update", "user", strconv.FormatInt(req.UserID, 10), req.Status)
	return nil
}

// UpdateRole changes a member's role.
func (s *Service) UpdateRole(ctx context.Context, req *models.UpdateRoleRequest) error {
	s.logger.Info("UpdateRole: user id=%d -> role=%s by actor=%d", req.UserID, req.Role, req.ActorID)

	role, err := models.ToDomainUserRole(req.Role)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.UpdateRole(ctx, req.UserID, role); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("UpdateRole: repository error for user id=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: UpdateRole - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, req.ActorID, "user.role.update", "user", strconv.FormatInt(req.UserID, 10), req.Role)
	return nil
}

func validateRegistration(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if req.Category == "" {
		return fmt.Errorf("%w: membership category is required", ErrInvalidInput)
	}
	return nil
}
