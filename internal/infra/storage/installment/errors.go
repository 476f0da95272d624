package installment

import "errors"

var (
	// ErrInstallmentNotFound is returned when the installment does not exist
	ErrInstallmentNotFound = errors.New("installment.repository: installment not found")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("installment.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails
	ErrExecQuery = errors.New("installment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("installment.repository: failed to scan row")
)
