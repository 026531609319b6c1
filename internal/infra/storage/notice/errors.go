package notice

import "errors"

var (
	// ErrNoticeNotFound is returned when a notice does not exist.
	ErrNoticeNotFound = errors.New("notice.repository: notice not found")

	// ErrBuildQuery is returned when building a SQL statement fails.
	ErrBuildQuery = errors.New("notice.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails.
	ErrExecQuery = errors.New("notice.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("notice.repository: failed to scan row")
)
