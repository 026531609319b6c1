package models

import (
	"fmt"
	"time"

	"github.com/dungeon-app/booking-service/internal/domain"
)

// RegisterRequest is the service-level request to register a member.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Category string
}

// UpdateStatusRequest changes a member's standing.
type UpdateStatusRequest struct {
	ActorID int64
	UserID  int64
	Status  string
}

// UpdateRoleRequest changes a member's role.
type UpdateRoleRequest struct {
	ActorID int64
	UserID  int64
	Role    string
}

// UserResponse is the service-level view of a user. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID        int64
	Name      string
	Email     string
	Role      string
	Category  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserListResponse wraps a user listing.
type UserListResponse struct {
	Users []*UserResponse
}

// ToDomainUserStatus validates and converts a status string.
func ToDomainUserStatus(s string) (domain.UserStatus, error) {
	status := domain.UserStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown user status %q", s)
	}
	return status, nil
}

// ToDomainUserRole validates and converts a role string.
func ToDomainUserRole(s string) (domain.UserRole, error) {
	role := domain.UserRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("unknown user role %q", s)
	}
	return role, nil
}

// FromDomainUser converts a domain user.
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Category:  u.Category,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromDomainUserList converts a domain user slice.
func FromDomainUserList(users []*domain.User) *UserListResponse {
	out := &UserListResponse{Users: make([]*UserResponse, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, FromDomainUser(u))
	}
	return out
}
