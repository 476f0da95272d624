package create_agreement

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_agreement: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("create_agreement: internal error")
)
