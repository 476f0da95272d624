package mediasync

import "errors"

var (
	// ErrMediaNotFound is returned when the media unit does not exist
	ErrMediaNotFound = errors.New("mediasync: media unit not found")

	// ErrInternal is returned on repository failures
	ErrInternal = errors.New("mediasync: internal error")
)
