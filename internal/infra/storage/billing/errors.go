package billing

import "errors"

var (
	// ErrInvoiceNotFound is returned when an invoice does not exist.
	ErrInvoiceNotFound = errors.New("billing.repository: invoice not found")

	// ErrDuplicatePeriod is returned when an invoice already exists for
	// the user and period.
	ErrDuplicatePeriod = errors.New("billing.repository: invoice already exists for period")

	// ErrBuildQuery is returned when building a SQL statement fails.
	ErrBuildQuery = errors.New("billing.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails.
	ErrExecQuery = errors.New("billing.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("billing.repository: failed to scan row")
)
