package agreement

import "errors"

var (
	// ErrAgreementNotFound is returned when the agreement does not exist
	ErrAgreementNotFound = errors.New("agreement.repository: agreement not found")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("agreement.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails
	ErrExecQuery = errors.New("agreement.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("agreement.repository: failed to scan row")
)
