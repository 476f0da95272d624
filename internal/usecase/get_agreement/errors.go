package get_agreement

import "errors"

var (
	// ErrAgreementNotFound is returned when the agreement does not exist
	// or sits in the recycle bin
	ErrAgreementNotFound = errors.New("get_agreement: agreement not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_agreement: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("get_agreement: internal error")
)
