package recyclebin

import "errors"

var (
	// ErrEntryNotFound is returned when the target record does not exist
	ErrEntryNotFound = errors.New("recyclebin: entry not found")

	// ErrUnknownEntityType is returned for an unrecognized entity type
	ErrUnknownEntityType = errors.New("recyclebin: unknown entity type")

	// ErrInternal is returned on repository failures
	ErrInternal = errors.New("recyclebin: internal error")
)
