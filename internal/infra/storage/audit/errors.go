package audit

import "errors"

var (
	// ErrBuildQuery is returned when building a SQL statement fails.
	ErrBuildQuery = errors.New("audit.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails.
	ErrExecQuery = errors.New("audit.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("audit.repository: failed to scan row")
)
