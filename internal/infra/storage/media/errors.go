package media

import "errors"

var (
	// ErrMediaNotFound is returned when the media unit does not exist
	ErrMediaNotFound = errors.New("media.repository: media unit not found")

	// ErrDuplicateCode is returned when the unit code is already taken
	ErrDuplicateCode = errors.New("media.repository: media code already exists")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("media.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails
	ErrExecQuery = errors.New("media.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("media.repository: failed to scan row")
)
