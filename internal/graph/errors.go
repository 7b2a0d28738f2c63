package graph

import "errors"

var (
	// ErrUnknownNode indicates a referenced location does not exist in the store.
	ErrUnknownNode = errors.New("unknown location")
	// ErrDuplicateNode indicates a location name was declared twice.
	ErrDuplicateNode = errors.New("duplicate location")
	// ErrInvalidWeight indicates a negative route distance.
	ErrInvalidWeight = errors.New("invalid route distance")
	// ErrInvalidNode indicates a location without a name.
	ErrInvalidNode = errors.New("location name is required")
)
