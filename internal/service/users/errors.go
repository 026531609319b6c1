package users

import "errors"

var (
	// ErrUserNotFound is returned when the user does not exist.
	ErrUserNotFound = errors.New("users.service: user not found")

	// ErrEmailTaken is returned when registering a duplicate email.
	ErrEmailTaken = errors.New("users.service: email already registered")

	// ErrInvalidCredentials is returned on bad email/password pairs.
	// Deliberately indistinguishable between the two cases.
	ErrInvalidCredentials = errors.New("users.service: invalid credentials")

	// ErrAccountBlocked is returned when a blocked member tries to log in.
	ErrAccountBlocked = errors.New("users.service: account blocked")

	// ErrInvalidInput is returned on validation failures.
	ErrInvalidInput = errors.New("users.service: invalid input")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("users.service: internal error")
)
