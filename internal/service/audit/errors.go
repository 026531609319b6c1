package audit

import "errors"

var (
	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("audit.service: internal error")
)
