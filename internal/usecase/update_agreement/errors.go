package update_agreement

import "errors"

var (
	// ErrAgreementNotFound is returned when the agreement does not exist
	// or sits in the recycle bin
	ErrAgreementNotFound = errors.New("update_agreement: agreement not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("update_agreement: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("update_agreement: internal error")
)
