package domain

import "time"

// UserRole represents a user's administrative role. Role is orthogonal
// to membership standing: an administrator with a pending membership
// still cannot book.
type UserRole string

const (
	RoleMember UserRole = "Membro"
	RoleEditor UserRole = "Editor"
	RoleAdmin  UserRole = "Administrador"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleMember, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// UserStatus represents membership standing.
type UserStatus string

const (
	UserPending UserStatus = "Pendente"
	UserActive  UserStatus = "Ativo"
	UserBlocked UserStatus = "Bloqueado"
)

// IsValid reports whether s is one of the known statuses.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserPending, UserActive, UserBlocked:
		return true
	}
	return false
}

// User is an association member account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	Category     string // membership tier, priced via billing config
	Status       UserStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanPublishNotices reports whether the user may author notices.
func (u *User) CanPublishNotices() bool {
	return u.Role == RoleEditor || u.Role == RoleAdmin
}
